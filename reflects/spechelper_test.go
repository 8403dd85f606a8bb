package reflects_test

type StructObject struct{}

type InterfaceObject interface{}

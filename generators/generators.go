// Package generators provides ready made rule strategies.
//
//	muffin.Rules{
//		"Name":  generators.FirstName,
//		"Email": generators.Email,
//		"Age":   generators.Number(18, 99),
//	}
package generators

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/Pallinder/go-randomdata"

	"github.com/adamluzsi/muffin"
)

// go-randomdata shares a single non thread safe source
var mutex sync.Mutex

func locked(fn func() interface{}) muffin.Generator {
	return func() interface{} {
		mutex.Lock()
		defer mutex.Unlock()
		return fn()
	}
}

var (
	FirstName = locked(func() interface{} { return randomdata.FirstName(randomdata.RandomGender) })
	LastName  = locked(func() interface{} { return randomdata.LastName() })
	Email     = locked(func() interface{} { return randomdata.Email() })
	City      = locked(func() interface{} { return randomdata.City() })
	Paragraph = locked(func() interface{} { return randomdata.Paragraph() })
	SillyName = locked(func() interface{} { return randomdata.SillyName() })
	Noun      = locked(func() interface{} { return randomdata.Noun() })
	Boolean   = locked(func() interface{} { return randomdata.Boolean() })
)

// Number generates an int in the [min, max] range.
// It panics when max is less than min, when max is math.MaxInt,
// or when the range holds more than math.MaxInt values.
func Number(min, max int) muffin.Generator {
	if max < min {
		panic(fmt.Sprintf("generators.Number: max (%d) is less than min (%d)", max, min))
	}
	if max == math.MaxInt {
		panic("generators.Number: max must be less than math.MaxInt")
	}
	if span := max - min; span < 0 || span == math.MaxInt {
		panic(fmt.Sprintf("generators.Number: range [%d, %d] is too wide", min, max))
	}
	return locked(func() interface{} { return randomdata.Number(min, max+1) })
}

var rnd = rand.New(rand.NewSource(time.Now().UnixNano()))

// OneOf picks one of the values.
// It panics when no value is given.
func OneOf(values ...interface{}) muffin.Generator {
	if len(values) == 0 {
		panic("generators.OneOf: at least one value is required")
	}
	return locked(func() interface{} { return values[rnd.Intn(len(values))] })
}

// Sequence generates prefix-1, prefix-2, and so on.
func Sequence(prefix string) muffin.Generator {
	var (
		m sync.Mutex
		n int
	)
	return func() interface{} {
		m.Lock()
		defer m.Unlock()
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// --- lessons/internal/cheese/cheese.go ---

package cheese

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/v4rm4n/lessons/internal/logger"
)

// CheeseRatio is how much cheese one unit of milk makes.
const CheeseRatio = 0.5

// milkMethod is looked up by name at runtime. Go only exposes exported
// methods through reflection, so the name has to start with a capital.
const milkMethod = "Milk"

// ErrSomethingWentWrong is the only failure MakeCheese reports. A missing
// method, a bad signature and a panic inside Milk all end up here.
var ErrSomethingWentWrong = errors.New("something went wrong")

// MakeCheese finds a Milk method on v by name, calls it and scales the result.
//
// Nothing checks at compile time that v has a Milk method. Every mistake
// shows up here, at runtime, as ErrSomethingWentWrong.
func MakeCheese(v any) (float64, error) {
	return makeCheese(v, logger.Nop())
}

func makeCheese(v any, log *zap.SugaredLogger) (qty float64, err error) {
	milk, err := lookupMilk(v)
	if err != nil {
		log.Debugw("milk lookup failed", "type", fmt.Sprintf("%T", v), "error", err)
		return 0, ErrSomethingWentWrong
	}

	// A panic inside Milk is just another failure.
	defer func() {
		if r := recover(); r != nil {
			log.Debugw("milk panicked", "type", fmt.Sprintf("%T", v), "panic", r)
			qty, err = 0, ErrSomethingWentWrong
		}
	}()
	out := milk.Call(nil)

	return toFloat(out[0]) * CheeseRatio, nil
}

// lookupMilk returns the bound Milk method of v after checking its shape:
// no arguments and exactly one numeric result.
func lookupMilk(v any) (reflect.Value, error) {
	if v == nil {
		return reflect.Value{}, errors.New("nil value")
	}

	m := reflect.ValueOf(v).MethodByName(milkMethod)
	if !m.IsValid() {
		return reflect.Value{}, fmt.Errorf("no method %s", milkMethod)
	}

	mt := m.Type()
	if mt.NumIn() != 0 || mt.IsVariadic() {
		return reflect.Value{}, fmt.Errorf("%s takes %d arguments", milkMethod, mt.NumIn())
	}
	if mt.NumOut() != 1 {
		return reflect.Value{}, fmt.Errorf("%s returns %d values", milkMethod, mt.NumOut())
	}
	if !isNumeric(mt.Out(0).Kind()) {
		return reflect.Value{}, fmt.Errorf("%s returns %s", milkMethod, mt.Out(0))
	}

	return m, nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanFloat():
		return v.Float()
	case v.CanInt():
		return float64(v.Int())
	default:
		return float64(v.Uint())
	}
}

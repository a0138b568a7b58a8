package endpoint

import (
	"fmt"
	"sync"

	"github.com/ariebrainware/healthghar/telehealth"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

type bindingTag struct {
	name string
	fn   validator.Func
}

var bindingTags = []bindingTag{
	{"isodate", func(fl validator.FieldLevel) bool {
		return telehealth.ValidDate(fl.Field().String())
	}},
	{"clocktime", func(fl validator.FieldLevel) bool {
		_, err := telehealth.ClockTime(fl.Field().String())
		return err == nil
	}},
	{"slottime", func(fl validator.FieldLevel) bool {
		return telehealth.ValidSlotTime(fl.Field().String())
	}},
}

func registerTags(v *validator.Validate, tags []bindingTag) error {
	for _, tag := range tags {
		if err := v.RegisterValidation(tag.name, tag.fn); err != nil {
			return fmt.Errorf("register binding tag %q: %w", tag.name, err)
		}
	}
	return nil
}

// RegisterValidators adds the isodate, clocktime and slottime binding tags
// to gin's validator. Safe to call more than once. It panics when the tags
// cannot be registered, since every request using them would fail.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic(fmt.Sprintf("gin validator engine is %T, not *validator.Validate", binding.Validator.Engine()))
		}
		if err := registerTags(v, bindingTags); err != nil {
			panic(err)
		}
	})
}

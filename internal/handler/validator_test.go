package handler

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_DamageType(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"bash", "bash", false},
		{"uppercase", "HEAT", false},
		{"fire alias", "fire", false},
		{"empty", "", true},
		{"unknown", "plasma", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(&resistQuery{Type: tt.value})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("uses query names", func(t *testing.T) {
		err := v.ValidateStruct(&resistQuery{Type: "plasma"})
		assert.Equal(t, map[string]string{"type": "Unknown damage type"}, FormatValidationError(err))
	})

	t.Run("required", func(t *testing.T) {
		err := v.ValidateStruct(&levelQuery{})
		assert.Equal(t, map[string]string{"level": "This field is required"}, FormatValidationError(err))
	})

	t.Run("oneof", func(t *testing.T) {
		err := v.ValidateStruct(&listQuery{Soft: "sometimes"})
		assert.Equal(t, "Must be one of: true false", FormatValidationError(err)["soft"])
	})

	t.Run("non validation error", func(t *testing.T) {
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})
}

func TestGetValidator_ConcurrentFirstUse(t *testing.T) {
	validate = nil
	validateOnce = sync.Once{}

	const goroutines = 8
	got := make([]*Validator, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := GetValidator()
			assert.Error(t, v.ValidateStruct(&levelQuery{}))
			got[i] = v
		}(i)
	}
	wg.Wait()

	for _, v := range got {
		assert.Same(t, got[0], v)
	}
}

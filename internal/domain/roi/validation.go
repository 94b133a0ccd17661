package roi

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"telematics_roi/internal/domain/entities"
)

// maxExactInt bounds the float values converted to int during coercion.
const maxExactInt = 1 << 53

// Advisory is a non-blocking remark about otherwise valid inputs.
type Advisory struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validation is the outcome of Validate.
//
// Coerced always holds every schema key, with nil for absent or unparseable
// values, so callers can redisplay a form even when Valid is false. Inputs is
// only populated when Valid is true.
type Validation struct {
	Valid      bool
	Errors     map[string]string
	Coerced    map[string]any
	Inputs     entities.Inputs
	Advisories []Advisory
}

// Validate checks raw against the schema using the current month for
// advisories.
func Validate(raw map[string]any) Validation {
	return ValidateAt(raw, time.Now())
}

// ValidateAt checks raw against the schema. now is only used to flag a start
// month in the past, which never fails validation.
func ValidateAt(raw map[string]any, now time.Time) Validation {
	v := Validation{
		Errors:  make(map[string]string),
		Coerced: make(map[string]any, len(schema)),
	}

	var in entities.Inputs
	for _, f := range schema {
		val := coerce(f, raw[f.Key])
		v.Coerced[f.Key] = val
		if msg := check(f, val); msg != "" {
			v.Errors[f.Key] = msg
			continue
		}
		f.set(&in, val)
	}

	_, rampErr := v.Errors[KeyUtilisationRampMonths]
	_, horizonErr := v.Errors[KeyTimeHorizonYears]
	if !rampErr && !horizonErr && in.UtilisationRampMonths > in.TotalMonths() {
		f := fieldsByKey[KeyUtilisationRampMonths]
		v.Errors[f.Key] = fmt.Sprintf("%s must not exceed the time horizon (%d months)", f.Label, in.TotalMonths())
	}

	if _, bad := v.Errors[KeyStartMonth]; !bad {
		if adv, ok := startMonthAdvisory(in.StartMonth, now); ok {
			v.Advisories = append(v.Advisories, adv)
		}
	}

	v.Valid = len(v.Errors) == 0
	if v.Valid {
		v.Inputs = in
	}
	return v
}

// ValidateInputs runs typed inputs through the same rules as raw records.
func ValidateInputs(in entities.Inputs) Validation {
	return Validate(ToRaw(in))
}

func check(f Field, val any) string {
	if val == nil {
		return f.Label + " is required"
	}

	switch f.Type {
	case TypeInteger, TypeNumber:
		n, _ := toFloat(val)
		if f.Type == TypeInteger && n != math.Trunc(n) {
			return f.Label + " must be a whole number"
		}
		if n < f.Min || n > f.Max {
			return fmt.Sprintf("%s must be between %s and %s", f.Label, formatBound(f.Min), formatBound(f.Max))
		}
	case TypeString:
		if len(f.Enum) > 0 && !slices.Contains(f.Enum, val.(string)) {
			return fmt.Sprintf("%s must be one of %s", f.Label, strings.Join(f.Enum, ", "))
		}
	}
	return ""
}

func startMonthAdvisory(startMonth string, now time.Time) (Advisory, bool) {
	start, err := time.Parse(entities.StartMonthLayout, startMonth)
	if err != nil {
		return Advisory{}, false
	}
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if !start.Before(current) {
		return Advisory{}, false
	}
	return Advisory{
		Field:   KeyStartMonth,
		Message: fmt.Sprintf("Start month %s is earlier than the current month %s", startMonth, current.Format(entities.StartMonthLayout)),
	}, true
}

// coerce converts a raw value to the field's declared type. Anything that
// cannot be converted becomes nil.
func coerce(f Field, raw any) any {
	switch f.Type {
	case TypeInteger, TypeNumber:
		n, ok := toFloat(raw)
		if !ok {
			return nil
		}
		if f.Type == TypeInteger && n == math.Trunc(n) && math.Abs(n) <= maxExactInt {
			return int(n)
		}
		return n
	case TypeString:
		s, ok := toString(raw)
		if !ok || s == "" {
			return nil
		}
		if len(f.Enum) > 0 {
			s = strings.ToUpper(s)
		}
		return s
	case TypeDate:
		s, ok := toString(raw)
		if !ok {
			return nil
		}
		t, err := time.Parse(entities.StartMonthLayout, s)
		if err != nil {
			return nil
		}
		return t.Format(entities.StartMonthLayout)
	}
	return nil
}

func toFloat(raw any) (float64, bool) {
	var n float64
	switch v := raw.(type) {
	case nil:
		return 0, false
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func toString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), true
	case entities.Currency:
		return strings.TrimSpace(string(v)), true
	default:
		return "", false
	}
}

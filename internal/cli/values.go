package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/partbench/internal/resource"
)

// splitList accepts "1,2,3", "1 2 3" or any mix of commas and spaces.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}

// floatList is a flag.Value for comma-separated floats.
type floatList struct {
	values []float64
}

func (f *floatList) String() string {
	parts := make([]string, len(f.values))
	for i, v := range f.values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (f *floatList) Set(s string) error {
	var values []float64
	for _, part := range splitList(s) {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", part)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return fmt.Errorf("list must not be empty")
	}
	f.values = values
	return nil
}

// intList is a flag.Value for comma-separated integers.
type intList struct {
	values []int
}

func (l *intList) String() string {
	parts := make([]string, len(l.values))
	for i, v := range l.values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (l *intList) Set(s string) error {
	var values []int
	for _, part := range splitList(s) {
		v, err := strconv.Atoi(part)
		if err != nil {
			return fmt.Errorf("invalid integer %q", part)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return fmt.Errorf("list must not be empty")
	}
	l.values = values
	return nil
}

// rangeValue is a flag.Value for "min,max".
type rangeValue struct {
	r *resource.Range
}

func (v rangeValue) String() string {
	if v.r == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", v.r.Min, v.r.Max)
}

func (v rangeValue) Set(s string) error {
	parts := splitList(s)
	if len(parts) != 2 {
		return fmt.Errorf("range needs exactly 2 values (min,max)")
	}
	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid integer %q", parts[0])
	}
	hi, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid integer %q", parts[1])
	}
	*v.r = resource.Range{Min: lo, Max: hi}
	return nil
}

package funnelplot

import (
	"fmt"
	"io"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Float  FieldType = iota // continuous data
	String                  // discrete data, stored as pool indices
)

func (t FieldType) String() string {
	if t == String {
		return "String"
	}
	return "Float"
}

// Field is one column of a data frame.
type Field struct {
	Type FieldType

	// Data holds the values. For String fields these are indices into
	// Pool.
	Data []float64
	Pool *StringPool
}

// NewField makes a field for n values.
func NewField(n int, t FieldType, pool *StringPool) Field {
	return Field{Type: t, Data: make([]float64, n), Pool: pool}
}

// Discrete reports whether f holds strings.
func (f Field) Discrete() bool { return f.Type == String }

// String formats the value x of f.
func (f Field) String(x float64) string {
	if f.Type == String {
		return f.Pool.Get(int(x))
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// DataFrame is a table of equally long columns. Internally every value
// is a float64; strings are interned in Pool.
type DataFrame struct {
	Name    string
	N       int
	Columns map[string]Field
	Pool    *StringPool
}

// NewDataFrame returns an empty data frame. A nil pool gets replaced by a
// fresh one.
func NewDataFrame(name string, pool *StringPool) *DataFrame {
	if pool == nil {
		pool = NewStringPool()
	}
	return &DataFrame{
		Name:    name,
		Columns: make(map[string]Field),
		Pool:    pool,
	}
}

// Has reports whether df has a column name.
func (df *DataFrame) Has(name string) bool {
	_, ok := df.Columns[name]
	return ok
}

// FieldNames returns the sorted column names.
func (df *DataFrame) FieldNames() []string {
	names := make([]string, 0, len(df.Columns))
	for name := range df.Columns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewDataFrameFrom constructs a data frame from a slice of structs. All
// exported fields of integer, float or string type become columns, as do
// methods without parameters returning such a type:
//      func(m Measurement) BMI() float64 { return m.Weight / (m.Height * m.Height) }
func NewDataFrameFrom(data interface{}) (*DataFrame, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.Struct {
		return nil, NewError(ErrCodeInvalidFormat, "cannot convert %T to data frame", data)
	}
	t := v.Type().Elem()
	n := v.Len()
	df := NewDataFrame(t.Name(), nil)
	df.N = n

	add := func(name string, kind reflect.Kind, value func(i int) reflect.Value) {
		var field Field
		switch kind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			field = NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				field.Data[i] = float64(value(i).Int())
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			field = NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				field.Data[i] = float64(value(i).Uint())
			}
		case reflect.Float32, reflect.Float64:
			field = NewField(n, Float, df.Pool)
			for i := 0; i < n; i++ {
				field.Data[i] = value(i).Float()
			}
		case reflect.String:
			field = NewField(n, String, df.Pool)
			for i := 0; i < n; i++ {
				field.Data[i] = float64(df.Pool.Add(value(i).String()))
			}
		default:
			return
		}
		df.Columns[name] = field
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		idx := i
		add(f.Name, f.Type.Kind(), func(j int) reflect.Value { return v.Index(j).Field(idx) })
	}

	// Look for methods with signatures like "func(elemtype) [int,string,float]".
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 || df.Has(m.Name) {
			continue
		}
		fn := m.Func
		add(m.Name, m.Type.Out(0).Kind(), func(j int) reflect.Value {
			return fn.Call([]reflect.Value{v.Index(j)})[0]
		})
	}

	return df, nil
}

// ReadCSV reads a comma separated table with a header line. Columns whose
// non-empty cells all parse as numbers become Float columns (empty cells
// are NaN), all others String columns.
func ReadCSV(r io.Reader) (*DataFrame, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, WrapError(ErrCodeInvalidFormat, err, "cannot read csv")
	}
	df := NewDataFrame("csv", nil)
	df.N = len(rows)
	if len(rows) == 0 {
		return df, nil
	}

	for name := range rows[0] {
		numeric := true
		for _, row := range rows {
			cell := strings.TrimSpace(row[name])
			if cell == "" {
				continue
			}
			if _, err := strconv.ParseFloat(cell, 64); err != nil {
				numeric = false
				break
			}
		}

		if numeric {
			field := NewField(df.N, Float, df.Pool)
			for i, row := range rows {
				cell := strings.TrimSpace(row[name])
				if cell == "" {
					field.Data[i] = math.NaN()
					continue
				}
				field.Data[i], _ = strconv.ParseFloat(cell, 64)
			}
			df.Columns[name] = field
			continue
		}
		field := NewField(df.N, String, df.Pool)
		for i, row := range rows {
			field.Data[i] = float64(df.Pool.Add(row[name]))
		}
		df.Columns[name] = field
	}
	return df, nil
}

// Missing reports whether x is a missing value of f: NaN for Float
// fields and the empty string for String fields.
func (f Field) Missing(x float64) bool {
	if f.Discrete() {
		return f.String(x) == ""
	}
	return math.IsNaN(x)
}

// Levels returns the distinct non-missing values of field in df in
// group-by order: numerically for Float fields, lexically for String
// fields.
func Levels(df *DataFrame, field string) []float64 {
	f, ok := df.Columns[field]
	if !ok {
		return nil
	}
	set := NewFloatSet()
	for _, x := range f.Data[:df.N] {
		if f.Missing(x) {
			continue
		}
		set.Add(x)
	}
	levels := set.Elements()
	if f.Discrete() {
		sort.Slice(levels, func(i, j int) bool {
			return f.String(levels[i]) < f.String(levels[j])
		})
	}
	return levels
}

// GroupBy partitions the column value by the levels of column group.
// The groups come in the order of Levels and are labelled with the level.
// Rows with a missing group key are dropped.
func (df *DataFrame) GroupBy(value, group string) ([]Group, error) {
	vf, ok := df.Columns[value]
	if !ok {
		return nil, NewError(ErrCodeInvalidColumn, "no column %q in %s (have %s)",
			value, df.Name, strings.Join(df.FieldNames(), ", "))
	}
	if vf.Discrete() {
		return nil, NewError(ErrCodeInvalidColumn, "column %q is not numeric", value)
	}
	gf, ok := df.Columns[group]
	if !ok {
		return nil, NewError(ErrCodeInvalidColumn, "no column %q in %s (have %s)",
			group, df.Name, strings.Join(df.FieldNames(), ", "))
	}

	levels := Levels(df, group)
	index := make(map[float64]int, len(levels))
	groups := make([]Group, len(levels))
	for i, level := range levels {
		index[level] = i
		groups[i].Label = gf.String(level)
	}
	for i := 0; i < df.N; i++ {
		j, ok := index[gf.Data[i]]
		if !ok {
			continue
		}
		groups[j].Values = append(groups[j].Values, vf.Data[i])
	}
	return groups, nil
}

// Funnel groups the column value of df by column group and draws a
// funnel plot of it with the engine selected by mode. Groups are
// labelled with their key.
func Funnel(s Surface, df *DataFrame, value, group string, mode Mode, opts ...Option) (*Result, error) {
	groups, err := df.GroupBy(value, group)
	if err != nil {
		return nil, err
	}
	switch mode {
	case ParametricMode:
		return Parametric(s, groups, opts...)
	case BootstrapMode:
		return Bootstrap(s, groups, opts...)
	}
	return nil, invalidf("unknown mode %d", mode)
}

// Print writes df as a simple table to w.
func (df *DataFrame) Print(w io.Writer) {
	names := df.FieldNames()
	fmt.Fprintf(w, "Data %q (%d rows)\n", df.Name, df.N)
	fmt.Fprintln(w, strings.Join(names, "\t"))
	for i := 0; i < df.N; i++ {
		cells := make([]string, len(names))
		for j, name := range names {
			f := df.Columns[name]
			cells[j] = f.String(f.Data[i])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}

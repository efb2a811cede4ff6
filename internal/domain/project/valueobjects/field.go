package valueobjects

import "fmt"

// FieldType is the declared input type of a ticket custom field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldFile     FieldType = "file"
)

var validFieldTypes = map[FieldType]bool{
	FieldText:     true,
	FieldTextarea: true,
	FieldNumber:   true,
	FieldSelect:   true,
	FieldFile:     true,
}

func (ft FieldType) String() string {
	return string(ft)
}

func (ft FieldType) IsValid() bool {
	return validFieldTypes[ft]
}

func NewFieldType(s string) (FieldType, error) {
	ft := FieldType(s)
	if !ft.IsValid() {
		return "", fmt.Errorf("invalid field type: %s", s)
	}
	return ft, nil
}

// FieldValue is a tagged variant keyed by the field's declared type.
// Text and textarea fields carry Text, number fields carry Number, select
// fields carry Option, and file fields carry only the uploaded Filename
// (file content storage is out of scope).
type FieldValue struct {
	Type     FieldType `json:"type"`
	Text     string    `json:"text,omitempty"`
	Number   float64   `json:"number,omitempty"`
	Option   string    `json:"option,omitempty"`
	Filename string    `json:"filename,omitempty"`
}

func NewTextValue(fieldType FieldType, text string) (*FieldValue, error) {
	if fieldType != FieldText && fieldType != FieldTextarea {
		return nil, fmt.Errorf("field type %s does not carry a text value", fieldType)
	}
	return &FieldValue{Type: fieldType, Text: text}, nil
}

func NewNumberValue(number float64) *FieldValue {
	return &FieldValue{Type: FieldNumber, Number: number}
}

func NewSelectValue(option string) *FieldValue {
	return &FieldValue{Type: FieldSelect, Option: option}
}

func NewFileValue(filename string) *FieldValue {
	return &FieldValue{Type: FieldFile, Filename: filename}
}

// Matches reports whether the value's tag agrees with the declared field type.
func (v *FieldValue) Matches(fieldType FieldType) bool {
	return v != nil && v.Type == fieldType
}

// Display returns the value's payload as a display string.
func (v *FieldValue) Display() string {
	if v == nil {
		return ""
	}
	switch v.Type {
	case FieldText, FieldTextarea:
		return v.Text
	case FieldNumber:
		return fmt.Sprintf("%g", v.Number)
	case FieldSelect:
		return v.Option
	case FieldFile:
		return v.Filename
	default:
		return ""
	}
}

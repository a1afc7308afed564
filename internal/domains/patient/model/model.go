package model

const (
	TableName  = "patients"
	EntityName = "patient"

	FieldID       = "id"
	FieldName     = "name"
	FieldAge      = "age"
	FieldSymptoms = "symptoms"
	FieldPincode  = "pincode"
)

// SymptomSeparator splits the stored symptoms column.
const SymptomSeparator = ","

type Patient struct {
	ID       int64  `db:"id"       insert:"-"`
	Name     string `db:"name"`
	Age      int    `db:"age"`
	Symptoms string `db:"symptoms"`
	Pincode  string `db:"pincode"`
}

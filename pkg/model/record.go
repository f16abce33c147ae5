// pkg/model/record.go
package model

// Field names of a population-registry record. All six must be present on
// every record in a batch; a missing field is a batch-level structural
// problem, not a per-record validation failure.
const (
	FieldKKNo       = "KK_NO"
	FieldNIK        = "NIK"
	FieldCustName   = "CUSTNAME"
	FieldGender     = "JENIS_KELAMIN"
	FieldBirthDate  = "TANGGAL_LAHIR"
	FieldBirthPlace = "TEMPAT_LAHIR"
)

// RequiredFields lists the six record fields in canonical column order.
var RequiredFields = []string{
	FieldKKNo,
	FieldNIK,
	FieldCustName,
	FieldGender,
	FieldBirthDate,
	FieldBirthPlace,
}

// Record maps field names to ingested values. Lookups of absent fields yield
// the missing value.
type Record map[string]Value

// Get returns the value for a field, missing if the field is absent.
func (r Record) Get(field string) Value {
	return r[field]
}

// MissingFields returns the required fields this record does not carry, in
// canonical order.
func (r Record) MissingFields() []string {
	var missing []string
	for _, field := range RequiredFields {
		if _, ok := r[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

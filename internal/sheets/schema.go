package sheets

// ColumnRequirement defines whether a column is required or optional.
type ColumnRequirement string

const (
	Required ColumnRequirement = "required"
	Optional ColumnRequirement = "optional"
)

// ColumnSpec describes one column in a sheet schema.
type ColumnSpec struct {
	Name        string            `json:"name"`
	Requirement ColumnRequirement `json:"requirement"`
}

// Schema defines the expected columns of a curation sheet. It drives the
// single up-front header check that gates both the translation and the
// classification paths.
type Schema struct {
	Name    string       `json:"name"`
	Columns []ColumnSpec `json:"columns"`
}

// TemplateSchema is the schema of the curation template. Only the four
// curator-verdict columns are hard requirements; a sheet missing any of
// them is rejected whole.
func TemplateSchema() Schema {
	return Schema{
		Name: "curation-template",
		Columns: []ColumnSpec{
			{Name: ColCurator, Requirement: Required},
			{Name: ColChecked, Requirement: Required},
			{Name: ColCorrect, Requirement: Required},
			{Name: ColChanged, Requirement: Required},
			{Name: ColSubject, Requirement: Optional},
			{Name: ColPredicate, Requirement: Optional},
			{Name: ColObject, Requirement: Optional},
			{Name: ColEvidence, Requirement: Optional},
			{Name: ColCitationReference, Requirement: Optional},
			{Name: ColPMID, Requirement: Optional},
			{Name: ColErrorType, Requirement: Optional},
			{Name: ColSourceID, Requirement: Optional},
		},
	}
}

// CheckResult reports a header check against a schema.
type CheckResult struct {
	Missing []string `json:"missing,omitempty"`
	OK      bool     `json:"ok"`
}

// Check evaluates a sheet header against the schema. OK is true when all
// required columns are present.
func (s Schema) Check(header []string) CheckResult {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var result CheckResult
	for _, spec := range s.Columns {
		if spec.Requirement != Required {
			continue
		}
		if !present[spec.Name] {
			result.Missing = append(result.Missing, spec.Name)
		}
	}
	result.OK = len(result.Missing) == 0
	return result
}

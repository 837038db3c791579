package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanBindings(t *testing.T) {
	content := `export interface Patient {
	id: string;
}

export type PatientFilter = Partial<Patient>;
export type Generic<T> = { data: T };
type Hidden = string;
export interface Patient {
}
`

	assert.Equal(t, []string{"Patient", "PatientFilter", "Patient"}, ScanBindings(content))
	assert.Empty(t, ScanBindings("// nothing here"))
}

func TestCatalogDeduplicates(t *testing.T) {
	builder := NewCatalogBuilder()
	builder.Add("Patient", "PatientFilter")
	builder.Add("Patient", "Note")
	catalog := builder.Build()

	// * later additions do not leak into a built catalog
	builder.Add("Late")

	assert.Equal(t, []string{"Patient", "PatientFilter", "Note"}, catalog.Names())
	assert.Equal(t, 3, catalog.Len())
	assert.True(t, catalog.Contains("Note"))
	assert.False(t, catalog.Contains("Late"))
}

func TestCatalogCovers(t *testing.T) {
	builder := NewCatalogBuilder()
	builder.Add("Patient", "PatientForCreate")
	catalog := builder.Build()

	assert.True(t, catalog.Covers("null"))
	assert.True(t, catalog.Covers("String"))
	assert.True(t, catalog.Covers("Patient"))
	assert.True(t, catalog.Covers("Array<Patient>"))
	assert.True(t, catalog.Covers("ParamsForCreate<PatientForCreate>"))
	assert.False(t, catalog.Covers("Doctor"))
	assert.False(t, catalog.Covers("Array<PatientRecord>"))
}

func TestScanExplicit(t *testing.T) {
	content := `RouterBuilder::default()
	.append_dyn("a", get_note.into_dyn())
	.append_dyn("b", list_notes .into_dyn())`

	assert.Equal(t, []string{"get_note", "list_notes"}, ScanExplicit(content))
}

func TestScanRoutes(t *testing.T) {
	content := `// router_builder!(ignored)
router_builder!(
    get_patient,
    // create_patient,
    list_patients,
)`

	assert.Equal(t, []string{"get_patient", "list_patients"}, ScanRoutes(content))
	assert.Empty(t, ScanRoutes("fn main() {}"))
}

func TestScanDeclaration(t *testing.T) {
	declaration := ScanDeclaration(patientDeclarative)
	if assert.NotNil(t, declaration) {
		entity, ok := declaration.Role(RoleEntity)
		assert.True(t, ok)
		assert.Equal(t, "Patient", entity)

		filter, _ := declaration.Role(RoleFilter)
		assert.Equal(t, "PatientFilter", filter)
	}

	assert.Nil(t, ScanDeclaration("router_builder!(get_patient)"))
}

func TestMatchKind(t *testing.T) {
	cases := map[string]string{
		"get_patient_record":     "get",
		"create_patient_record":  "create",
		"delete_patient_record":  "delete",
		"update_patient_record":  "update",
		"list_patient_records":   "list",
		"archive_patient_record": "",
		"list_patient_record":    "",
	}

	for name, expected := range cases {
		kind := MatchKind(name, "patient_record")
		if expected == "" {
			assert.Nil(t, kind, name)
			continue
		}
		if assert.NotNil(t, kind, name) {
			assert.Equal(t, expected, kind.Name)
			assert.Equal(t, name, kind.HandlerName("patient_record"))
		}
	}
}

func TestClassifyShape(t *testing.T) {
	assert.Equal(t, ShapeCreated, ClassifyShape("ParamsForCreate<PatientForCreate>"))
	assert.Equal(t, ShapeUpdated, ClassifyShape("ParamsForUpdate<PatientForUpdate>"))
	assert.Equal(t, ShapeListed, ClassifyShape("ParamsList<PatientFilter>"))
	assert.Equal(t, ShapeIdentified, ClassifyShape("ParamsIded"))
	assert.Equal(t, ShapeUnclassified, ClassifyShape("NoteQuery"))
}

func TestMapTypeOrderIndependent(t *testing.T) {
	assert.Equal(t, "Array<Foo>", MapType("Vec<Foo>"))
	assert.Equal(t, "string", MapType("i64"))
	assert.Equal(t, "null", MapType("()"))

	rewrites := [][2]string{
		{"Vec", "Array"},
		{"i64", "string"},
		{"()", "null"},
	}
	orders := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	input := "(Vec<Foo>, i64, ())"
	for _, order := range orders {
		output := input
		for _, i := range order {
			output = strings.ReplaceAll(output, rewrites[i][0], rewrites[i][1])
		}
		assert.Equal(t, MapType(input), output)
	}
	assert.Equal(t, "(Array<Foo>, string, null)", MapType(input))
}

func TestReturnPayload(t *testing.T) {
	assert.Equal(t, "Patient", ReturnPayload("Result<DataRpcResult<Patient>>"))
	assert.Equal(t, "Array<Patient>", ReturnPayload("Result<DataRpcResult<Vec<Patient>>>"))
	assert.Equal(t, "string", ReturnPayload("Result<DataRpcResult<i64>>"))
	assert.Equal(t, "null", ReturnPayload("Result<()>"))
}

func TestSignature(t *testing.T) {
	extractor := newExtractor()

	signature, found := extractor.Signature(noteExplicit, "get_note")
	assert.True(t, found)
	assert.Equal(t, []*Param{{Name: "params", Type: "ParamsIded"}}, signature.Params)
	assert.Equal(t, "Result<DataRpcResult<Note>>", signature.Result)

	signature, found = extractor.Signature(noteExplicit, "missing_note")
	assert.False(t, found)
	assert.Empty(t, signature.Params)
	assert.Empty(t, signature.Result)

	// * injected parameters are removed in any position
	content := `async fn move_note(params: ParamsIded, ctx: Ctx) -> Result<()> {}`
	signature, _ = extractor.Signature(content, "move_note")
	assert.Equal(t, []*Param{{Name: "params", Type: "ParamsIded"}}, signature.Params)

	content = `async fn link_note(a: A, ctx: Ctx, b: B) -> Result<()> {}`
	signature, _ = extractor.Signature(content, "link_note")
	assert.Equal(t, []*Param{{Name: "a", Type: "A"}, {Name: "b", Type: "B"}}, signature.Params)

	content = "async fn tag_note(\n\tmm: ModelManager,\n\tparams: ParamsIded,\n\tctx: Ctx,\n) -> Result<()> {}"
	signature, _ = extractor.Signature(content, "tag_note")
	assert.Equal(t, []*Param{{Name: "params", Type: "ParamsIded"}}, signature.Params)

	// * only whole parameters are removed
	content = `async fn wrap_note(sub_ctx: Ctx, ctx: CtxGuard, params: ParamsIded) -> Result<()> {}`
	signature, _ = extractor.Signature(content, "wrap_note")
	assert.Equal(t, []*Param{
		{Name: "sub_ctx", Type: "Ctx"},
		{Name: "ctx", Type: "CtxGuard"},
		{Name: "params", Type: "ParamsIded"},
	}, signature.Params)
}

func TestSplitParams(t *testing.T) {
	text := "pair: HashMap<String, i64>, flag: bool"

	// * flat split cuts inside the generic argument list
	flat := SplitParams(text, false)
	assert.Equal(t, []*Param{
		{Name: "pair", Type: "HashMap<String"},
		{Name: "i64>", Type: ""},
		{Name: "flag", Type: "bool"},
	}, flat)

	nested := SplitParams(text, true)
	assert.Equal(t, []*Param{
		{Name: "pair", Type: "HashMap<String, i64>"},
		{Name: "flag", Type: "bool"},
	}, nested)

	assert.Empty(t, SplitParams("", false))
}

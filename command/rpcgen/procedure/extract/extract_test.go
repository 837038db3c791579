package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const patientDeclarative = `use crate::router_builder;

generate_common_rpc_fns!(
    Bmc: PatientBmc,
    Entity: Patient,
    ForCreate: PatientForCreate,
    ForUpdate: PatientForUpdate,
    Filter: PatientFilter,
    Suffix: patient
);

pub fn rpc_router_builder() -> RouterBuilder {
    router_builder!(
        get_patient,
        create_patient,
        // delete_patient,
        list_patients,
    )
}
`

const noteExplicit = `pub fn rpc_router_builder() -> RouterBuilder {
    RouterBuilder::default()
        .append_dyn("get_note", get_note.into_dyn())
        .append_dyn("search_notes", search_notes.into_dyn())
        .append_dyn("missing_note", missing_note.into_dyn())
}

pub async fn get_note(ctx: Ctx, mm: ModelManager, params: ParamsIded) -> Result<DataRpcResult<Note>> {
    todo!()
}

pub async fn search_notes(
    ctx: Ctx,
    mm: ModelManager,
    query: NoteQuery,
) -> Result<DataRpcResult<Vec<Note>>> {
    todo!()
}
`

func newExtractor() *Extractor {
	return NewExtractor([]string{"ctx: Ctx", "mm: ModelManager"}, false)
}

func TestExtractDeclarative(t *testing.T) {
	result, err := newExtractor().Extract(&File{
		Path:    "lib-rpc/src/patient_rpc.rs",
		Entity:  "patient",
		Content: patientDeclarative,
	})
	require.NoError(t, err)
	require.Len(t, result.Handlers, 3)

	names := []string{"get_patient", "create_patient", "list_patients"}
	shapes := []Shape{ShapeIdentified, ShapeCreated, ShapeListed}
	for i, handler := range result.Handlers {
		assert.Equal(t, names[i], handler.Name)
		assert.Equal(t, "patient", handler.Entity)
		assert.Equal(t, ConventionDeclarative, handler.Convention)
		assert.Equal(t, shapes[i], ClassifyShape(handler.First().Type))
	}

	assert.Equal(t, "ParamsForCreate<PatientForCreate>", result.Handlers[1].First().Type)
	assert.Equal(t, "ParamsList<PatientFilter>", result.Handlers[2].First().Type)
	assert.Equal(t, "Array<Patient>", ReturnPayload(result.Handlers[2].Result))
	assert.Equal(t, "Patient", ReturnPayload(result.Handlers[0].Result))
	assert.Empty(t, result.Skipped)
}

func TestExtractExplicit(t *testing.T) {
	result, err := newExtractor().Extract(&File{
		Path:    "lib-rpc/src/note_rpc.rs",
		Entity:  "note",
		Content: noteExplicit,
	})
	require.NoError(t, err)
	require.Len(t, result.Handlers, 2)

	assert.Equal(t, "get_note", result.Handlers[0].Name)
	assert.Equal(t, []*Param{{Name: "params", Type: "ParamsIded"}}, result.Handlers[0].Params)
	assert.Equal(t, "search_notes", result.Handlers[1].Name)
	assert.Equal(t, []*Param{{Name: "query", Type: "NoteQuery"}}, result.Handlers[1].Params)
	assert.Equal(t, "Result<DataRpcResult<Vec<Note>>>", result.Handlers[1].Result)
}

func TestExtractUnknownRoute(t *testing.T) {
	content := `generate_common_rpc_fns!(
    Entity: Patient,
    ForCreate: PatientForCreate,
    ForUpdate: PatientForUpdate,
    Filter: PatientFilter,
);

router_builder!(archive_patient, get_patient, update_patient)
`

	result, err := newExtractor().Extract(&File{Path: "patient_rpc.rs", Entity: "patient", Content: content})
	require.NoError(t, err)

	assert.Equal(t, []string{"archive_patient"}, result.Skipped)
	require.Len(t, result.Handlers, 2)
	assert.Equal(t, "get_patient", result.Handlers[0].Name)
	assert.Equal(t, "update_patient", result.Handlers[1].Name)
	assert.Equal(t, ShapeUpdated, ClassifyShape(result.Handlers[1].First().Type))
}

func TestExtractMissingRole(t *testing.T) {
	content := `generate_common_rpc_fns!(
    Entity: Patient,
    ForCreate: PatientForCreate,
);

router_builder!(get_patient, list_patients)
`

	_, err := newExtractor().Extract(&File{Path: "patient_rpc.rs", Entity: "patient", Content: content})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFilterMissing))
	assert.Contains(t, err.Error(), "patient_rpc.rs")
}

func TestExtractUnusedRoleMayBeMissing(t *testing.T) {
	content := `generate_common_rpc_fns!(
    Entity: Patient,
);

router_builder!(get_patient, delete_patient)
`

	result, err := newExtractor().Extract(&File{Path: "patient_rpc.rs", Entity: "patient", Content: content})
	require.NoError(t, err)
	assert.Len(t, result.Handlers, 2)
}

func TestExtractMissingDeclaration(t *testing.T) {
	content := `router_builder!(get_patient)`

	_, err := newExtractor().Extract(&File{Path: "patient_rpc.rs", Entity: "patient", Content: content})
	assert.True(t, errors.Is(err, ErrEntityMissing))

	content = `generate_common_rpc_fns!(
    ForCreate: PatientForCreate,
);

router_builder!(get_patient)
`
	_, err = newExtractor().Extract(&File{Path: "patient_rpc.rs", Entity: "patient", Content: content})
	assert.True(t, errors.Is(err, ErrEntityMissing))
}

func TestExtractEmptyFile(t *testing.T) {
	result, err := newExtractor().Extract(&File{Path: "empty_rpc.rs", Entity: "empty", Content: "use crate::prelude::*;\n"})
	require.NoError(t, err)
	assert.Empty(t, result.Handlers)
	assert.Empty(t, result.Skipped)
}

func TestExtractDeduplicatesNames(t *testing.T) {
	content := `generate_common_rpc_fns!(
    Entity: Patient,
);

router_builder!(get_patient, export_patient)

fn builder() {
    export_patient.into_dyn();
}

pub async fn get_patient(ctx: Ctx, mm: ModelManager, lookup: PatientLookup) -> Result<DataRpcResult<Patient>> {
    todo!()
}

pub async fn export_patient(ctx: Ctx, mm: ModelManager, params: ParamsIded) -> Result<DataRpcResult<String>> {
    todo!()
}
`

	result, err := newExtractor().Extract(&File{Path: "patient_rpc.rs", Entity: "patient", Content: content})
	require.NoError(t, err)
	require.Len(t, result.Handlers, 2)

	assert.Equal(t, "export_patient", result.Handlers[0].Name)
	assert.Equal(t, "get_patient", result.Handlers[1].Name)
	assert.Equal(t, ConventionExplicit, result.Handlers[1].Convention)
	assert.Equal(t, "PatientLookup", result.Handlers[1].First().Type)
}

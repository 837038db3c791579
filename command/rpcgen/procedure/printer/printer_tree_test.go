package printer

import (
	"bytes"
	"strings"
	"testing"

	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/emit"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/extract"
)

func TestPrintDocument(t *testing.T) {
	document := &emit.Document{
		Bindings: []string{"Patient", "PatientFilter"},
		Modules: []*emit.Module{
			{
				Entity: "patient_record",
				Stubs: []*emit.Stub{
					{
						Handler:    &extract.Handler{Name: "get_patient_record", Convention: extract.ConventionDeclarative},
						Shape:      extract.ShapeIdentified,
						ReturnType: "PatientRecord",
					},
					{
						Handler:    &extract.Handler{Name: "list_patient_records", Convention: extract.ConventionDeclarative},
						Shape:      extract.ShapeListed,
						ReturnType: "Array<PatientRecord>",
					},
				},
			},
		},
	}

	buffer := new(bytes.Buffer)
	if err := PrintDocument(buffer, document); err != nil {
		t.Fatalf("failed to print document: %v", err)
	}

	output := buffer.String()
	t.Logf("\n%s", output)

	for _, expected := range []string{
		"rpc clients (2 bindings, 2 handlers)",
		"patient_record_client: Patient Record (PatientRecord)",
		"get_patient_record [identified, declarative] -> PatientRecord",
		"list_patient_records [listed, declarative] -> Array<PatientRecord>",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected output to contain %q", expected)
		}
	}
}

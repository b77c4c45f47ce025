package documents_test

import (
	"errors"
	"testing"

	"github.com/documenta/docuflow/internal/documents"
	"github.com/documenta/docuflow/internal/entities"
	"github.com/documenta/docuflow/internal/validation"
	"github.com/google/uuid"
)

const maxFileSize = 10 * 1024 * 1024

func validCommand() documents.CreateCommand {
	return documents.CreateCommand{
		CompanyID: uuid.New(),
		Entity: &documents.EntityRef{
			EntityID:   uuid.New(),
			EntityType: entities.TypeVehicle,
		},
		Document: &documents.Meta{
			Name:      "contract.pdf",
			MimeType:  "application/pdf",
			SizeBytes: 2048,
		},
	}
}

func TestCreateCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*documents.CreateCommand)
		wantErr error
	}{
		{
			"valid without flow",
			func(cmd *documents.CreateCommand) {},
			nil,
		},
		{
			"valid with flow and steps",
			func(cmd *documents.CreateCommand) {
				cmd.Flow = &documents.FlowSpec{
					Enabled: true,
					Steps:   []validation.StepSpec{{Order: 1, ApproverID: "user-1"}},
				}
			},
			nil,
		},
		{
			"valid with disabled flow and no steps",
			func(cmd *documents.CreateCommand) {
				cmd.Flow = &documents.FlowSpec{Enabled: false}
			},
			nil,
		},
		{
			"valid at exact size limit",
			func(cmd *documents.CreateCommand) {
				cmd.Document.SizeBytes = maxFileSize
			},
			nil,
		},
		{
			"missing company id",
			func(cmd *documents.CreateCommand) { cmd.CompanyID = uuid.Nil },
			documents.ErrMissingFields,
		},
		{
			"missing entity",
			func(cmd *documents.CreateCommand) { cmd.Entity = nil },
			documents.ErrMissingFields,
		},
		{
			"missing entity id",
			func(cmd *documents.CreateCommand) { cmd.Entity.EntityID = uuid.Nil },
			documents.ErrMissingFields,
		},
		{
			"missing document metadata",
			func(cmd *documents.CreateCommand) { cmd.Document = nil },
			documents.ErrMissingFields,
		},
		{
			"missing document name",
			func(cmd *documents.CreateCommand) { cmd.Document.Name = "" },
			documents.ErrMissingFields,
		},
		{
			"missing mime type",
			func(cmd *documents.CreateCommand) { cmd.Document.MimeType = "" },
			documents.ErrMissingFields,
		},
		{
			"zero size",
			func(cmd *documents.CreateCommand) { cmd.Document.SizeBytes = 0 },
			documents.ErrMissingFields,
		},
		{
			"file over size limit",
			func(cmd *documents.CreateCommand) { cmd.Document.SizeBytes = maxFileSize + 1 },
			documents.ErrFileTooLarge,
		},
		{
			"unsupported mime type",
			func(cmd *documents.CreateCommand) { cmd.Document.MimeType = "application/zip" },
			documents.ErrUnsupportedMime,
		},
		{
			"enabled flow without steps",
			func(cmd *documents.CreateCommand) {
				cmd.Flow = &documents.FlowSpec{Enabled: true}
			},
			validation.ErrInvalidSteps,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mutate(&cmd)

			err := cmd.Validate(maxFileSize)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMimeAllowed(t *testing.T) {
	tests := []struct {
		mime string
		want bool
	}{
		{"application/pdf", true},
		{"image/jpeg", true},
		{"image/jpg", true},
		{"image/png", true},
		{"application/msword", true},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"application/zip", false},
		{"text/plain", false},
		{"image/gif", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			if got := documents.MimeAllowed(tt.mime); got != tt.want {
				t.Errorf("MimeAllowed(%q) = %v, want %v", tt.mime, got, tt.want)
			}
		})
	}
}

func TestFlowSpec_Requested(t *testing.T) {
	tests := []struct {
		name string
		flow *documents.FlowSpec
		want bool
	}{
		{"nil spec", nil, false},
		{"disabled", &documents.FlowSpec{Enabled: false}, false},
		{"enabled", &documents.FlowSpec{Enabled: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.flow.Requested(); got != tt.want {
				t.Errorf("Requested() = %v, want %v", got, tt.want)
			}
		})
	}
}

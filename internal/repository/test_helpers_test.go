package repository_test

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pkozlov/outreach/internal/models"
)

const testCompanyID = "company-1"

func newTestBroadcast(companyID string) *models.Broadcast {
	return &models.Broadcast{
		ID:                uuid.New().String(),
		CompanyID:         companyID,
		Name:              "Spring promo",
		MessageType:       models.MessageTypeText,
		Content:           sql.NullString{String: "Hello there", Valid: true},
		TemplateLanguage:  "en",
		RecipientType:     models.RecipientTypeLeads,
		RecipientCount:    2,
		MessagesPerMinute: 60,
		BatchSize:         10,
		Status:            models.BroadcastStatusDraft,
	}
}

func newTestRecipient(broadcastID, address string) *models.BroadcastRecipient {
	return &models.BroadcastRecipient{
		ID:          uuid.New().String(),
		BroadcastID: broadcastID,
		LeadID:      sql.NullString{String: uuid.New().String(), Valid: true},
		Address:     address,
		Status:      models.RecipientStatusPending,
	}
}

func newTestSequence(companyID string) *models.Sequence {
	return &models.Sequence{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      "Welcome flow",
		Steps: models.SequenceSteps{
			{Type: models.StepTypeText, MessageText: "Welcome!", DelayHours: 0},
			{Type: models.StepTypeText, MessageText: "Still interested?", DelayHours: 48},
		},
		ExitOnReply: true,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func newTestEnrollment(sequenceID, leadID string, nextRunAt time.Time) *models.SequenceEnrollment {
	return &models.SequenceEnrollment{
		ID:          uuid.New().String(),
		SequenceID:  sequenceID,
		LeadID:      leadID,
		CurrentStep: 0,
		Status:      models.EnrollmentStatusActive,
		NextRunAt:   sql.NullTime{Time: nextRunAt, Valid: true},
		StartedAt:   sql.NullTime{Time: time.Now(), Valid: true},
	}
}

func insertTestLead(db *sqlx.DB, companyID, phone, status, source string) (string, error) {
	id := uuid.New().String()
	_, err := db.Exec(`
		INSERT INTO leads (id, company_id, name, mobile_phone, status, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, id, companyID, "Test Lead", phone, status, source)
	return id, err
}

func insertTestContact(db *sqlx.DB, companyID, phone string) (string, error) {
	id := uuid.New().String()
	_, err := db.Exec(`
		INSERT INTO contacts (id, company_id, first_name, phone, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, id, companyID, "Test Contact", phone)
	return id, err
}

func insertInboundMessage(db *sqlx.DB, companyID, leadID, address string, createdAt time.Time) error {
	_, err := db.Exec(`
		INSERT INTO messages (id, company_id, address, direction, message_type, lead_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.New().String(), companyID, address, models.MessageDirectionInbound, models.MessageTypeText, leadID, createdAt)
	return err
}

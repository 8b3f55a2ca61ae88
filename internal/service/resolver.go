package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/pkozlov/outreach/internal/models"
	"github.com/pkozlov/outreach/internal/repository"
)

const (
	leadIDPrefix    = "lead_"
	contactIDPrefix = "contact_"
)

// phoneNormalizer strips the characters the provider rejects in addresses.
var phoneNormalizer = strings.NewReplacer("+", "", " ", "", "-", "", "(", "", ")", "")

func normalizePhone(phone string) string {
	return phoneNormalizer.Replace(phone)
}

// Resolver turns a broadcast's recipient specification into a deduplicated
// list of (target, address) pairs.
type Resolver struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewResolver(repo repository.Repository, logger *zap.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger,
	}
}

// ResolveRecipients materializes the audience for one recipient spec.
// Addresses are normalized and deduplicated keeping the first occurrence;
// an empty result is models.ErrNoRecipients.
func (r *Resolver) ResolveRecipients(
	companyID string,
	recipientType models.RecipientType,
	recipientIDs []string,
	filters *models.RecipientFilters,
) ([]models.ResolvedRecipient, error) {
	var recipients []models.ResolvedRecipient

	switch recipientType {
	case models.RecipientTypeLeads:
		leads, err := r.repo.Audience().ListLeadsWithPhone(companyID)
		if err != nil {
			return nil, err
		}
		recipients = appendLeads(recipients, leads)

	case models.RecipientTypeContacts:
		contacts, err := r.repo.Audience().ListContactsWithPhone(companyID)
		if err != nil {
			return nil, err
		}
		recipients = appendContacts(recipients, contacts)

	case models.RecipientTypeCustom:
		if len(recipientIDs) == 0 {
			return nil, &models.ValidationError{Field: "recipient_ids", Reason: "required for custom recipient type"}
		}

		leadIDs, contactIDs := splitRecipientIDs(recipientIDs)

		leads, err := r.repo.Audience().GetLeadsByIDs(companyID, leadIDs)
		if err != nil {
			return nil, err
		}
		recipients = appendLeads(recipients, leads)

		contacts, err := r.repo.Audience().GetContactsByIDs(companyID, contactIDs)
		if err != nil {
			return nil, err
		}
		recipients = appendContacts(recipients, contacts)

	case models.RecipientTypeFilter:
		if filters == nil {
			return nil, &models.ValidationError{Field: "recipient_filters", Reason: "required for filter recipient type"}
		}

		leads, err := r.repo.Audience().ListLeadsFiltered(companyID, filters)
		if err != nil {
			return nil, err
		}
		recipients = appendLeads(recipients, leads)

	default:
		return nil, &models.ValidationError{Field: "recipient_type", Reason: "unknown recipient type"}
	}

	deduped := dedupeByAddress(recipients)
	if len(deduped) == 0 {
		return nil, models.ErrNoRecipients
	}

	r.logger.Debug("Resolved broadcast recipients",
		zap.String("company_id", companyID),
		zap.String("recipient_type", string(recipientType)),
		zap.Int("raw", len(recipients)),
		zap.Int("deduped", len(deduped)),
	)

	return deduped, nil
}

func appendLeads(recipients []models.ResolvedRecipient, leads []*models.Lead) []models.ResolvedRecipient {
	for _, lead := range leads {
		phone := lead.BestPhone()
		if phone == "" {
			continue
		}
		recipients = append(recipients, models.ResolvedRecipient{
			LeadID:  lead.ID,
			Address: normalizePhone(phone),
		})
	}
	return recipients
}

func appendContacts(recipients []models.ResolvedRecipient, contacts []*models.Contact) []models.ResolvedRecipient {
	for _, contact := range contacts {
		phone := contact.BestPhone()
		if phone == "" {
			continue
		}
		recipients = append(recipients, models.ResolvedRecipient{
			LeadID:    contact.LeadID.String,
			ContactID: contact.ID,
			Address:   normalizePhone(phone),
		})
	}
	return recipients
}

// splitRecipientIDs separates a mixed id list by kind prefix. Unprefixed
// entries are ignored.
func splitRecipientIDs(ids []string) (leadIDs, contactIDs []string) {
	for _, id := range ids {
		switch {
		case strings.HasPrefix(id, leadIDPrefix):
			leadIDs = append(leadIDs, strings.TrimPrefix(id, leadIDPrefix))
		case strings.HasPrefix(id, contactIDPrefix):
			contactIDs = append(contactIDs, strings.TrimPrefix(id, contactIDPrefix))
		}
	}
	return leadIDs, contactIDs
}

// dedupeByAddress keeps the first occurrence of each normalized address.
func dedupeByAddress(recipients []models.ResolvedRecipient) []models.ResolvedRecipient {
	seen := make(map[string]struct{}, len(recipients))
	deduped := make([]models.ResolvedRecipient, 0, len(recipients))

	for _, recipient := range recipients {
		if _, ok := seen[recipient.Address]; ok {
			continue
		}
		seen[recipient.Address] = struct{}{}
		deduped = append(deduped, recipient)
	}

	return deduped
}

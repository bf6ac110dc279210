// Package service orchestrates the lead store and the classification engine.
// It owns the batch "today" so the list view and the counts sidebar always
// evaluate against the same calendar date.
package service

import (
	"context"
	"strings"

	"satei_admin_backend/internal/leads/classify"
	"satei_admin_backend/internal/leads/repository"
	"satei_admin_backend/internal/leads/transport"
	"satei_admin_backend/platform/apperr"
	"satei_admin_backend/platform/logger"
	"satei_admin_backend/platform/phone"

	"github.com/google/uuid"
)

type Service struct {
	repo   repository.Store
	engine *classify.Engine
	log    *logger.Logger
}

func New(repo repository.Store, engine *classify.Engine, log *logger.Logger) *Service {
	return &Service{repo: repo, engine: engine, log: log}
}

// ClassifiedLead pairs a stored lead with its category memberships.
type ClassifiedLead struct {
	Lead       repository.Lead
	Categories []classify.Membership
}

// List returns the leads belonging to the category, newest first, each with
// its full membership set for the badge column. "Today" is fixed once for
// the whole batch.
func (s *Service) List(ctx context.Context, category classify.Category) ([]ClassifiedLead, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		s.log.DatabaseError("leads.list", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}

	today := s.engine.Today()

	out := make([]ClassifiedLead, 0, len(leads))
	for _, lead := range leads {
		if category != classify.CategoryAll && !s.engine.MatchesAt(lead.Data, category, today) {
			continue
		}
		out = append(out, ClassifiedLead{
			Lead:       lead,
			Categories: s.engine.ClassifyAt(lead.Data, today),
		})
	}

	return out, nil
}

// Counts returns the member count per category, including "all". It shares
// the predicate code path with List, so the sidebar and the list agree.
func (s *Service) Counts(ctx context.Context) (string, map[classify.Category]int, error) {
	leads, err := s.repo.List(ctx)
	if err != nil {
		s.log.DatabaseError("leads.list", err)
		return "", nil, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}

	today := s.engine.Today()
	records := make([]classify.Record, len(leads))
	for i, lead := range leads {
		records[i] = lead.Data
	}

	counts := s.engine.CountsAt(records, today)
	s.log.ClassificationRun(today, len(records), len(counts))

	return today, counts, nil
}

// Get returns one lead with its memberships.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (ClassifiedLead, error) {
	lead, err := s.repo.GetByID(ctx, id)
	if err == repository.ErrNotFound {
		return ClassifiedLead{}, apperr.NotFound("lead not found")
	}
	if err != nil {
		s.log.DatabaseError("leads.get", err)
		return ClassifiedLead{}, apperr.Wrap(apperr.KindInternal, "failed to load lead", err)
	}

	return ClassifiedLead{
		Lead:       lead,
		Categories: s.engine.Classify(lead.Data),
	}, nil
}

// Classification returns only the membership set for one lead.
func (s *Service) Classification(ctx context.Context, id uuid.UUID) ([]classify.Membership, error) {
	cl, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return cl.Categories, nil
}

// Create stores a new lead from the intake payload. Phone numbers are
// normalized to E.164 at the door; everything else is stored as given, since
// the engine normalizes on read.
func (s *Service) Create(ctx context.Context, req transport.CreateLeadRequest) (ClassifiedLead, error) {
	data := classify.Record{}

	putIfSet := func(key, value string) {
		if strings.TrimSpace(value) != "" {
			data[key] = strings.TrimSpace(value)
		}
	}

	putIfSet("name", req.Name)
	putIfSet("phone", phone.NormalizeE164(req.Phone))
	putIfSet("email", req.Email)
	putIfSet("propertyAddress", req.PropertyAddress)
	putIfSet("situationCompany", req.SituationCompany)
	putIfSet("nextCallDate", req.NextCallDate)
	putIfSet("visitDate", req.VisitDate)
	putIfSet("visitAssignee", req.VisitAssignee)
	putIfSet("contactMethod", req.ContactMethod)
	putIfSet("preferredContactTime", req.PreferredContactTime)
	putIfSet("phoneContactPerson", req.PhoneContactPerson)
	putIfSet("inquiryDate", req.InquiryDate)
	putIfSet("valuationMethod", req.ValuationMethod)
	putIfSet("mailingStatus", req.MailingStatus)

	lead, err := s.repo.Create(ctx, data)
	if err != nil {
		s.log.DatabaseError("leads.create", err)
		return ClassifiedLead{}, apperr.Wrap(apperr.KindInternal, "failed to create lead", err)
	}

	return ClassifiedLead{
		Lead:       lead,
		Categories: s.engine.Classify(lead.Data),
	}, nil
}

package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/catebi/go-tax-declaration/internal/common"
	"github.com/catebi/go-tax-declaration/internal/models"
)

// SessionService is the conversation state machine: one entry point per
// transition, all of them serialized per user by the session store. A
// transition commits only after its action succeeded; on failure the session
// stays where it was and the user may retry indefinitely. Outcomes are typed
// values and sentinel errors; user-facing wording is the transport's job.
type SessionService interface {
	Start(ctx context.Context, userID string) (models.SessionSnapshot, error)
	SelectLanguage(ctx context.Context, userID, choice string) (models.SessionSnapshot, error)
	RequestTemplate(ctx context.Context, userID string) (models.TemplateFile, error)
	SubmitTable(ctx context.Context, userID string, in models.TableSubmission) (models.TableReceipt, error)
	SubmitPriorAmount(ctx context.Context, userID, raw string) (models.AggregateTotals, error)
	Restart(ctx context.Context, userID string) (models.SessionSnapshot, error)
	Cancel(ctx context.Context, userID string) error
	Current(ctx context.Context, userID string) (models.SessionSnapshot, error)
}

type session service

var _ SessionService = (*session)(nil)

// Start resets the session to the initial state, discarding any prior data.
// It is also the restart transition from Completed.
func (s *session) Start(_ context.Context, userID string) (models.SessionSnapshot, error) {
	var snap models.SessionSnapshot
	err := s.srv.sessionStore.Do(userID, func(sess *models.Session) error {
		sess.Reset(s.srv.sessionStore.InitialState())
		snap = snapshotOf(sess)
		return nil
	})

	s.srv.log.Info("session started", zap.String("user_id", userID), zap.String("state", string(snap.State)))
	return snap, err
}

func (s *session) SelectLanguage(_ context.Context, userID, choice string) (models.SessionSnapshot, error) {
	var snap models.SessionSnapshot
	err := s.srv.sessionStore.Do(userID, func(sess *models.Session) error {
		if sess.State != models.StateAwaitingLanguage {
			return common.ErrInvalidTransition
		}

		lang, ok := models.ParseLanguage(choice)
		if !ok {
			return common.ErrUnknownLanguage
		}

		sess.Language = lang
		sess.State = models.StateAwaitingTemplateRequest
		snap = snapshotOf(sess)
		return nil
	})
	return snap, err
}

// RequestTemplate builds the entry workbook in the session's language. The
// transition to AwaitingFileOrLink commits only when the build succeeded.
func (s *session) RequestTemplate(_ context.Context, userID string) (models.TemplateFile, error) {
	var file models.TemplateFile
	err := s.srv.sessionStore.Do(userID, func(sess *models.Session) error {
		if sess.State != models.StateAwaitingTemplateRequest {
			return common.ErrInvalidTransition
		}

		built, err := s.srv.Template.Build(sess.Language)
		if err != nil {
			return err
		}

		file = built
		sess.State = models.StateAwaitingFileOrLink
		return nil
	})
	return file, err
}

// SubmitTable ingests the workbook bytes or the sheet link, then runs
// normalization and row parsing only; no conversion and no rate traffic
// happens here. On success the prepared table is stored and the session moves
// to AwaitingPriorAmount; on any failure it stays put.
func (s *session) SubmitTable(ctx context.Context, userID string, in models.TableSubmission) (models.TableReceipt, error) {
	var receipt models.TableReceipt
	err := s.srv.sessionStore.Do(userID, func(sess *models.Session) error {
		if sess.State != models.StateAwaitingFileOrLink {
			return common.ErrInvalidTransition
		}

		table, err := s.loadTable(ctx, in)
		if err != nil {
			return err
		}

		prepared, err := s.srv.Pipeline.Prepare(ctx, table)
		if err != nil {
			return err
		}

		sess.Pending = &prepared
		sess.State = models.StateAwaitingPriorAmount
		receipt = models.TableReceipt{
			SubmissionID: prepared.SubmissionID,
			RowsAccepted: len(prepared.Records),
			Rejections:   prepared.Rejections,
		}
		return nil
	})
	return receipt, err
}

// SubmitPriorAmount parses the carry-forward amount and runs the pipeline
// over the stored table. A non-numeric amount or a pipeline failure leaves
// both state and stored table untouched.
func (s *session) SubmitPriorAmount(ctx context.Context, userID, raw string) (models.AggregateTotals, error) {
	var totals models.AggregateTotals
	err := s.srv.sessionStore.Do(userID, func(sess *models.Session) error {
		if sess.State != models.StateAwaitingPriorAmount {
			return common.ErrInvalidTransition
		}

		prior, err := models.NewDecimal(strings.TrimSpace(raw))
		if err != nil {
			return common.ErrInvalidAmountInput
		}

		if sess.Pending == nil {
			return common.ErrNoPendingTable
		}

		result, err := s.srv.Pipeline.Process(ctx, *sess.Pending, prior)
		if err != nil {
			return err
		}

		totals = result
		sess.Totals = &result
		sess.State = models.StateCompleted
		s.srv.metrics.IncSessionCompleted()
		return nil
	})

	if err == nil {
		s.srv.log.Info("session completed", zap.String("user_id", userID))
	}
	return totals, err
}

func (s *session) Restart(ctx context.Context, userID string) (models.SessionSnapshot, error) {
	return s.Start(ctx, userID)
}

// Cancel drops the session entirely; distinct from Completed, no results were
// produced and the next contact starts fresh.
func (s *session) Cancel(_ context.Context, userID string) error {
	s.srv.sessionStore.Remove(userID)
	s.srv.log.Info("session canceled", zap.String("user_id", userID))
	return nil
}

func (s *session) Current(_ context.Context, userID string) (models.SessionSnapshot, error) {
	var snap models.SessionSnapshot
	err := s.srv.sessionStore.Do(userID, func(sess *models.Session) error {
		snap = snapshotOf(sess)
		return nil
	})
	return snap, err
}

func (s *session) loadTable(ctx context.Context, in models.TableSubmission) (models.LabeledTable, error) {
	switch {
	case in.SheetURL != "":
		return s.srv.sheetRepo.ReadTransactionTable(ctx, in.SheetURL)
	case len(in.Workbook) > 0:
		return s.srv.workbookRepo.ReadTransactionTable(ctx, in.Workbook)
	default:
		return models.LabeledTable{}, common.ErrEmptySubmission
	}
}

func snapshotOf(sess *models.Session) models.SessionSnapshot {
	snap := models.SessionSnapshot{
		UserID:   sess.UserID,
		State:    sess.State,
		Language: sess.Language,
	}
	if sess.Totals != nil {
		totals := *sess.Totals
		snap.Totals = &totals
	}
	return snap
}

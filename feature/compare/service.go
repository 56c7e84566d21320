package compare

import (
	"context"
	"time"

	"xml-compare-api/core/session"
	"xml-compare-api/core/source"
	"xml-compare-api/core/validate"
	"xml-compare-api/core/xmldiff"

	"go.uber.org/zap"
)

// Authenticator creates a session from inline credentials.
type Authenticator interface {
	Login(ctx context.Context, loginURL, username, password string) (session.Session, error)
}

// Service runs comparisons.
type Service struct {
	fetcher     source.Source
	sessions    *session.Store
	auth        Authenticator
	recorder    *Recorder
	concurrency int
	logger      *zap.Logger
}

// NewService creates a new compare service. recorder may be nil when no
// history database is configured.
func NewService(fetcher source.Source, sessions *session.Store, auth Authenticator, recorder *Recorder, concurrency int, logger *zap.Logger) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		fetcher:     fetcher,
		sessions:    sessions,
		auth:        auth,
		recorder:    recorder,
		concurrency: concurrency,
		logger:      logger,
	}
}

// CompareXML compares two inline documents.
func (s *Service) CompareXML(req CompareRequest) (xmldiff.Result, error) {
	start := time.Now()

	if err := validate.XMLContent(req.XML1); err != nil {
		return xmldiff.Result{}, err
	}
	if err := validate.XMLContent(req.XML2); err != nil {
		return xmldiff.Result{}, err
	}

	doc1, err := xmldiff.Flatten(req.XML1)
	if err != nil {
		return xmldiff.Result{}, err
	}
	doc2, err := xmldiff.Flatten(req.XML2)
	if err != nil {
		return xmldiff.Result{}, err
	}

	result := xmldiff.Compare(doc1, doc2, req.IgnorePaths, req.IgnoreProperties)
	s.record(RunKindXML, result, time.Since(start))
	return result, nil
}

// CompareURLs fetches both documents and compares them.
func (s *Service) CompareURLs(ctx context.Context, req URLCompareRequest) (xmldiff.Result, error) {
	start := time.Now()

	if err := validate.URL(req.URL1); err != nil {
		return xmldiff.Result{}, err
	}
	if err := validate.URL(req.URL2); err != nil {
		return xmldiff.Result{}, err
	}

	sess, err := s.resolveSession(ctx, req)
	if err != nil {
		return xmldiff.Result{}, err
	}

	xml1, err := s.fetcher.Fetch(ctx, req.URL1, sess)
	if err != nil {
		return xmldiff.Result{}, err
	}
	xml2, err := s.fetcher.Fetch(ctx, req.URL2, sess)
	if err != nil {
		return xmldiff.Result{}, err
	}

	doc1, err := xmldiff.Flatten(xml1)
	if err != nil {
		return xmldiff.Result{}, err
	}
	doc2, err := xmldiff.Flatten(xml2)
	if err != nil {
		return xmldiff.Result{}, err
	}

	result := xmldiff.Compare(doc1, doc2, req.IgnorePaths, req.IgnoreProperties)
	s.record(RunKindURL, result, time.Since(start))
	return result, nil
}

// resolveSession picks the session for a URL comparison: an existing
// one when referenced by id, a fresh one when inline credentials were
// supplied, or none.
func (s *Service) resolveSession(ctx context.Context, req URLCompareRequest) (*session.Session, error) {
	if req.SessionID != "" {
		sess, ok := s.sessions.Get(req.SessionID)
		if !ok {
			return nil, &validate.ValidationError{Message: "Session not found: " + req.SessionID}
		}
		return &sess, nil
	}

	if req.Credentials != nil {
		sess, err := s.auth.Login(ctx, req.Credentials.LoginURL, req.Credentials.Username, req.Credentials.Password)
		if err != nil {
			return nil, err
		}
		return &sess, nil
	}

	return nil, nil
}

func (s *Service) record(kind string, result xmldiff.Result, took time.Duration) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(kind, result, took)
}

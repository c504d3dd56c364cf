package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/ProfJake/lab10/internal/domain/entity"
	repo "github.com/ProfJake/lab10/internal/domain/repository"
	"github.com/ProfJake/lab10/pkg/helpers"
)

// CalorieFunc derives calories from recorded attributes. It fails on an
// unrecognized activity type or unusable measurements.
type CalorieFunc func(activityType string, weight, distance, time float64) (float64, error)

// ActivityService records validated activities and runs single-field
// searches enriched with derived calories.
type ActivityService struct {
	Activities repo.ActivityRepository
	Calories   CalorieFunc
	Logger     *logrus.Logger

	// Optional collaborators; nil disables them without affecting the
	// authoritative store path.
	Rabbit  *helpers.RabbitPublisher
	ES      *elasticsearch.Client
	ESIndex string
}

func NewActivityService(activities repo.ActivityRepository, calories CalorieFunc, logger *logrus.Logger) *ActivityService {
	return &ActivityService{Activities: activities, Calories: calories, Logger: logger}
}

// RecordResult is handed back to the delivery layer after an insert.
type RecordResult struct {
	ID       string
	Calories float64
}

// RecordedEvent is published after a successful insert.
type RecordedEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"activity_type"`
	Weight     float64   `json:"weight"`
	Distance   float64   `json:"distance"`
	Time       float64   `json:"time"`
	UserID     string    `json:"user_id"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Record computes calories first, so a submission the tracker rejects
// never reaches the store, then inserts and returns the derived value.
func (s *ActivityService) Record(ctx context.Context, in ActivityInput) (*RecordResult, error) {
	calories, err := s.Calories(in.Type, in.Weight, in.Distance, in.Time)
	if err != nil {
		return nil, err
	}

	a := &entity.Activity{
		Type:     in.Type,
		Weight:   in.Weight,
		Distance: in.Distance,
		Time:     in.Time,
		UserID:   in.UserID,
	}
	id, err := s.Activities.Insert(ctx, a)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", in.UserID).Error("activity insert failed")
		}
		return nil, fmt.Errorf("insert activity: %w", err)
	}

	s.publishRecorded(ctx, a)
	s.indexActivity(ctx, a)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"activity_id": id, "user_id": in.UserID}).Info("activity recorded")
	}
	return &RecordResult{ID: id, Calories: calories}, nil
}

// SearchItem is one enriched search hit.
type SearchItem struct {
	ID       string
	User     string
	Calories float64
}

// SearchResult is the ordered result set of one search, distance
// descending, echoing the matched field and value.
type SearchResult struct {
	Items []SearchItem
	Field repo.SearchField
	Value any
}

// Search executes the criteria through the store and enriches each record
// with calories. A record whose computation fails is skipped; failures are
// per record, never per query.
func (s *ActivityService) Search(ctx context.Context, criteria repo.SearchCriteria) (*SearchResult, error) {
	records, err := s.Activities.FindByField(ctx, criteria)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("field", string(criteria.Field)).Error("activity search failed")
		}
		return nil, fmt.Errorf("find activities: %w", err)
	}

	items := make([]SearchItem, 0, len(records))
	for _, a := range records {
		calories, err := s.Calories(a.Type, a.Weight, a.Distance, a.Time)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("activity_id", a.ID).Debug("skipping record with bad stored data")
			}
			continue
		}
		items = append(items, SearchItem{ID: a.ID, User: a.UserID, Calories: calories})
	}

	return &SearchResult{Items: items, Field: criteria.Field, Value: criteria.Value()}, nil
}

// EnrichedActivity is a stored record plus its derived calories.
type EnrichedActivity struct {
	entity.Activity
	Calories float64
}

// Get fetches one activity by id.
func (s *ActivityService) Get(ctx context.Context, id string) (*entity.Activity, error) {
	return s.Activities.GetByID(ctx, id)
}

// ListForUser returns the user's activities enriched with calories,
// skipping records whose stored measurements the tracker rejects.
func (s *ActivityService) ListForUser(ctx context.Context, userID string) ([]EnrichedActivity, error) {
	records, err := s.Activities.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	out := make([]EnrichedActivity, 0, len(records))
	for _, a := range records {
		calories, err := s.Calories(a.Type, a.Weight, a.Distance, a.Time)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("activity_id", a.ID).Debug("skipping record with bad stored data")
			}
			continue
		}
		out = append(out, EnrichedActivity{Activity: a, Calories: calories})
	}
	return out, nil
}

func (s *ActivityService) publishRecorded(ctx context.Context, a *entity.Activity) {
	if s.Rabbit == nil {
		return
	}
	event := RecordedEvent{
		ID:         a.ID,
		Type:       a.Type,
		Weight:     a.Weight,
		Distance:   a.Distance,
		Time:       a.Time,
		UserID:     a.UserID,
		RecordedAt: time.Now().UTC(),
	}
	if err := s.Rabbit.PublishJSON(ctx, event); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("activity_id", a.ID).Warn("event publish failed")
	}
}

// indexActivity mirrors the record into Elasticsearch best-effort; the
// store stays authoritative and indexing failures only warn.
func (s *ActivityService) indexActivity(ctx context.Context, a *entity.Activity) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"activity_type": a.Type,
		"weight":        a.Weight,
		"distance":      a.Distance,
		"time":          a.Time,
		"user_id":       a.UserID,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: a.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("activity_id", a.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"status": res.Status(), "activity_id": a.ID}).Warn("es index response error")
	}
}

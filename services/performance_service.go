package services

import (
	"context"
	"errors"
	"time"

	"github.com/benasja/workout-sub000/models"
	"github.com/benasja/workout-sub000/scoring"

	"gorm.io/gorm"
)

// lowRecoveryThreshold is the score below which the pipeline raises an alert.
const lowRecoveryThreshold = 40

// PerformanceService runs the daily scoring pipeline: biometric sample in,
// persisted DailyPerformance out, with alert/broadcast/event fanout.
type PerformanceService struct {
	db        *gorm.DB
	baselines *BaselineService
	hub       *RealtimeHub         // optional
	publisher *ScoreEventPublisher // optional
}

func NewPerformanceService(db *gorm.DB, baselines *BaselineService, hub *RealtimeHub, publisher *ScoreEventPublisher) *PerformanceService {
	return &PerformanceService{db: db, baselines: baselines, hub: hub, publisher: publisher}
}

// SampleInput is a day's readings as reported by the client. Nil means the
// device didn't produce that metric.
type SampleInput struct {
	HRV             *float64   `json:"hrv"`
	RHR             *float64   `json:"rhr"`
	TimeAsleepMin   *float64   `json:"time_asleep_min"`
	DeepSleepMin    *float64   `json:"deep_sleep_min"`
	RemSleepMin     *float64   `json:"rem_sleep_min"`
	CoreSleepMin    *float64   `json:"core_sleep_min"`
	SleepEfficiency *float64   `json:"sleep_efficiency"`
	HeartRateDipPct *float64   `json:"heart_rate_dip_pct"`
	Bedtime         *time.Time `json:"bedtime"`
	WakeTime        *time.Time `json:"wake_time"`
}

// UpsertSample stores the day's sample and recomputes that day's scores.
// The string slice is the flattened key findings for the day.
func (s *PerformanceService) UpsertSample(ctx context.Context, userID uint, date time.Time, in SampleInput) (*models.DailyPerformance, []string, error) {
	start := dayStart(date)

	sample := models.BiometricSample{
		UserID:          userID,
		Date:            start,
		HRV:             in.HRV,
		RHR:             in.RHR,
		TimeAsleepMin:   in.TimeAsleepMin,
		DeepSleepMin:    in.DeepSleepMin,
		RemSleepMin:     in.RemSleepMin,
		CoreSleepMin:    in.CoreSleepMin,
		SleepEfficiency: in.SleepEfficiency,
		HeartRateDipPct: in.HeartRateDipPct,
		Bedtime:         in.Bedtime,
		WakeTime:        in.WakeTime,
	}
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, start).
		Assign(sample).
		FirstOrCreate(&sample).Error; err != nil {
		return nil, nil, err
	}

	return s.Recompute(ctx, userID, start)
}

// Recompute rescoring an existing day. Returns scoring.ErrNoData when the
// day has a sample row but nothing scoreable in it, or no sample at all.
func (s *PerformanceService) Recompute(ctx context.Context, userID uint, date time.Time) (*models.DailyPerformance, []string, error) {
	start := dayStart(date)

	var sample models.BiometricSample
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, start).
		First(&sample).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, scoring.ErrNoData
		}
		return nil, nil, err
	}

	baseline, err := s.baselines.BaselineFor(ctx, userID, start)
	if err != nil {
		return nil, nil, err
	}

	sleepRes, sleepErr := scoring.ComputeSleepScore(SleepInputsFromSample(&sample), baseline)
	if sleepErr != nil && !errors.Is(sleepErr, scoring.ErrNoData) {
		return nil, nil, sleepErr
	}

	recIn := scoring.RecoveryInputs{HRV: sample.HRV, RHR: sample.RHR}
	if sleepRes != nil {
		recIn.SleepScore = &sleepRes.FinalScore
	}
	recRes, recErr := scoring.ComputeRecoveryScore(recIn, baseline)
	if recErr != nil && !errors.Is(recErr, scoring.ErrNoData) {
		return nil, nil, recErr
	}
	if sleepRes == nil && recRes == nil {
		return nil, nil, scoring.ErrNoData
	}

	perf := buildPerformance(userID, start, &sample, sleepRes, recRes)
	findings := dayFindings(sleepRes, recRes)

	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, start).
		Assign(perf).
		FirstOrCreate(&perf).Error; err != nil {
		return nil, nil, err
	}

	if recRes != nil && recRes.FinalScore < lowRecoveryThreshold {
		EmitAlert(userID, "warning", "Recovery is low today. Consider an easier session.")
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, scoredPayload(&perf, findings))
	}
	if s.publisher != nil {
		s.publisher.PublishScored(&perf)
	}

	return &perf, findings, nil
}

// buildPerformance maps the scorer outputs onto the persisted row. A scorer
// that returned nothing leaves its score nil so "no data" never reads as 0.
func buildPerformance(
	userID uint, date time.Time, sample *models.BiometricSample,
	sleepRes *scoring.SleepScoreResult, recRes *scoring.RecoveryScoreResult,
) models.DailyPerformance {
	perf := models.DailyPerformance{
		UserID: userID,
		Date:   date,
		HRV:    sample.HRV,
		RHR:    sample.RHR,
	}
	if sleepRes != nil {
		perf.SleepScore = &sleepRes.FinalScore
		perf.QualityScore = sleepRes.QualityScore
		perf.EfficiencyScore = sleepRes.EfficiencyScore
		perf.TimingScore = sleepRes.TimingScore
	}
	if recRes != nil {
		perf.RecoveryScore = &recRes.FinalScore
		perf.HRVDelta = recRes.HRVDelta
		perf.RHRDelta = recRes.RHRDelta
	}
	return perf
}

// dayFindings flattens both scorers' findings into display text.
func dayFindings(sleepRes *scoring.SleepScoreResult, recRes *scoring.RecoveryScoreResult) []string {
	var fs []scoring.Finding
	if sleepRes != nil {
		fs = append(fs, sleepRes.Findings...)
	}
	if recRes != nil {
		fs = append(fs, recRes.Findings...)
	}
	return scoring.Messages(fs)
}

// scoredPayload is the websocket message sent after every recompute,
// mirroring the RabbitMQ scored event.
func scoredPayload(perf *models.DailyPerformance, findings []string) map[string]any {
	return map[string]any{
		"kind":        "performance.scored",
		"performance": perf,
		"findings":    findings,
	}
}

// Get returns the persisted performance for one day. scoring.ErrNoData when
// the day was never scored.
func (s *PerformanceService) Get(ctx context.Context, userID uint, date time.Time) (*models.DailyPerformance, error) {
	var perf models.DailyPerformance
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		First(&perf).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, scoring.ErrNoData
	}
	if err != nil {
		return nil, err
	}
	return &perf, nil
}

func (s *PerformanceService) History(ctx context.Context, userID uint, from, to time.Time) ([]models.DailyPerformance, error) {
	var rows []models.DailyPerformance
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(from), dayEnd(to)).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}

// SleepInputsFromSample derives the scorer's inputs from a stored sample,
// converting stage minutes into percentages of time asleep.
func SleepInputsFromSample(sample *models.BiometricSample) scoring.SleepInputs {
	in := scoring.SleepInputs{
		TimeAsleepMin:   sample.TimeAsleepMin,
		SleepEfficiency: sample.SleepEfficiency,
		HeartRateDipPct: sample.HeartRateDipPct,
		Bedtime:         sample.Bedtime,
		WakeTime:        sample.WakeTime,
	}
	if sample.TimeAsleepMin != nil && *sample.TimeAsleepMin > 0 {
		total := *sample.TimeAsleepMin
		if sample.DeepSleepMin != nil {
			pct := *sample.DeepSleepMin / total * 100
			in.DeepSleepPct = &pct
		}
		if sample.RemSleepMin != nil {
			pct := *sample.RemSleepMin / total * 100
			in.RemSleepPct = &pct
		}
	}
	return in
}

package coaches

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/cobusiness02/forgefyt/internal/collection"
	"github.com/cobusiness02/forgefyt/internal/lib/period"
	"github.com/cobusiness02/forgefyt/internal/models"
	"github.com/cobusiness02/forgefyt/internal/services/clients"
)

const (
	recentActivityLimit = 5
	topPerformersLimit  = 3
)

// Типы событий ленты активности.
const (
	ActivitySessionCompleted = "session_completed"
	ActivityClientRegistered = "client_registered"
	ActivitySessionScheduled = "session_scheduled"
)

// CoachCard краткие сведения о тренере.
type CoachCard struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Avatar         *string `json:"avatar"`
	Specialization string  `json:"specialization"`
}

// DashboardStats накопленные показатели тренера.
type DashboardStats struct {
	TotalClients      int     `json:"totalClients"`
	ActiveClients     int     `json:"activeClients"`
	CompletedSessions int     `json:"completedSessions"`
	Rating            float64 `json:"rating"`
}

// Activity событие ленты активности.
type Activity struct {
	ID           string     `json:"id"`
	Type         string     `json:"type"`
	ClientName   string     `json:"clientName"`
	Description  string     `json:"description"`
	Timestamp    time.Time  `json:"timestamp"`
	Duration     int        `json:"duration,omitempty"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

// ScheduleItem тренировка в расписании на сегодня.
type ScheduleItem struct {
	ID          string `json:"id"`
	ClientName  string `json:"clientName"`
	WorkoutType string `json:"workoutType"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
}

// WeeklyProgress показатели текущей недели.
type WeeklyProgress struct {
	SessionsCompleted int     `json:"sessionsCompleted"`
	SessionsScheduled int     `json:"sessionsScheduled"`
	NewClients        int     `json:"newClients"`
	Revenue           float64 `json:"revenue"`
}

// Dashboard данные главного экрана тренера.
type Dashboard struct {
	Coach          CoachCard      `json:"coach"`
	Stats          DashboardStats `json:"stats"`
	RecentActivity []Activity     `json:"recentActivity"`
	TodaysSchedule []ScheduleItem `json:"todaysSchedule"`
	WeeklyProgress WeeklyProgress `json:"weeklyProgress"`
}

// Stats показатели тренера за период.
type Stats struct {
	Period            period.Period `json:"-"`
	SessionsCompleted int           `json:"sessionsCompleted"`
	NewClients        int           `json:"newClients"`
	Revenue           float64       `json:"revenue"`
	AverageRating     float64       `json:"averageRating"`
	TotalWorkoutHours float64       `json:"totalWorkoutHours"`
}

// Performer клиент в рейтинге по проведённым тренировкам.
type Performer struct {
	Name              string `json:"name"`
	SessionsCompleted int    `json:"sessionsCompleted"`
	ProgressScore     int    `json:"progressScore"`
}

// ClientActivity событие клиента в обзоре.
type ClientActivity struct {
	ClientName string    `json:"clientName"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
}

// ClientsOverview сводка по клиентам тренера.
type ClientsOverview struct {
	TotalClients           int              `json:"totalClients"`
	ActiveClients          int              `json:"activeClients"`
	NewThisMonth           int              `json:"newThisMonth"`
	RetentionRate          int              `json:"retentionRate"`
	AverageSessionsPerWeek float64          `json:"averageSessionsPerWeek"`
	TopPerformers          []Performer      `json:"topPerformers"`
	RecentActivity         []ClientActivity `json:"recentActivity"`
}

// book все клиенты и тренировки тренера, включая удалённые мягко.
type book struct {
	clients  []models.Client
	workouts []models.Workout
}

func (s *Service) load(ctx context.Context, owner string) (*book, error) {
	all := collection.Filter{Status: collection.StatusAll}
	cs, err := s.clients.Select(ctx, owner, all)
	if err != nil {
		return nil, err
	}
	ws, err := s.workouts.Select(ctx, owner, all)
	if err != nil {
		return nil, err
	}
	return &book{clients: cs, workouts: ws}, nil
}

// Dashboard собирает данные главного экрана по реальным клиентам и тренировкам.
func (s *Service) Dashboard(ctx context.Context, owner string) (*Dashboard, error) {
	const op = "coaches.Dashboard"

	c, err := s.Profile(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	b, err := s.load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	now := s.coaches.Now().UTC()

	d := &Dashboard{
		Coach: CoachCard{ID: c.ID, Name: c.Name, Avatar: c.Avatar, Specialization: c.Specialization},
	}

	d.Stats.TotalClients = len(b.clients)
	for i := range b.clients {
		if b.clients[i].Status == models.ClientActive {
			d.Stats.ActiveClients++
		}
	}
	var ratings []int
	for i := range b.workouts {
		w := &b.workouts[i]
		if w.Status != models.WorkoutCompleted {
			continue
		}
		d.Stats.CompletedSessions++
		if w.Rating != nil {
			ratings = append(ratings, *w.Rating)
		}
	}
	d.Stats.Rating = average(ratings)

	d.RecentActivity = b.activity(recentActivityLimit)
	d.TodaysSchedule = b.today(now)
	d.WeeklyProgress = b.week(now, c.SessionRate)

	return d, nil
}

func (b *book) activity(limit int) []Activity {
	out := make([]Activity, 0, len(b.clients)+len(b.workouts))
	for i := range b.clients {
		cl := &b.clients[i]
		out = append(out, Activity{
			ID:          "client-" + cl.ID,
			Type:        ActivityClientRegistered,
			ClientName:  cl.Name,
			Description: "New client registered",
			Timestamp:   cl.JoinDate,
		})
	}
	for i := range b.workouts {
		w := &b.workouts[i]
		switch w.Status {
		case models.WorkoutCompleted:
			out = append(out, Activity{
				ID:          "workout-" + w.ID,
				Type:        ActivitySessionCompleted,
				ClientName:  w.ClientName,
				Description: fmt.Sprintf("Completed %s workout", w.Title),
				Timestamp:   clients.SessionAt(w),
				Duration:    w.Duration,
			})
		case models.WorkoutScheduled:
			a := Activity{
				ID:          "workout-" + w.ID,
				Type:        ActivitySessionScheduled,
				ClientName:  w.ClientName,
				Description: fmt.Sprintf("%s session scheduled for %s", TypeLabel(w.Type), w.Date),
				Timestamp:   w.CreatedAt,
			}
			if at, err := period.SessionTime(w.Date, w.Time); err == nil {
				a.ScheduledFor = &at
			}
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (b *book) today(now time.Time) []ScheduleItem {
	date := now.Format(time.DateOnly)
	out := []ScheduleItem{}
	for i := range b.workouts {
		w := &b.workouts[i]
		if w.Date != date || w.Status == models.WorkoutCancelled {
			continue
		}
		out = append(out, ScheduleItem{
			ID:          w.ID,
			ClientName:  w.ClientName,
			WorkoutType: TypeLabel(w.Type),
			Time:        w.Time,
			Duration:    w.Duration,
			Status:      string(w.Status),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

func (b *book) week(now time.Time, rate float64) WeeklyProgress {
	from := period.WeekStart(now)
	to := from.AddDate(0, 0, 7)
	in := func(t time.Time) bool { return !t.Before(from) && t.Before(to) }

	var p WeeklyProgress
	for i := range b.workouts {
		w := &b.workouts[i]
		switch w.Status {
		case models.WorkoutCompleted:
			if in(clients.SessionAt(w)) {
				p.SessionsCompleted++
			}
		case models.WorkoutScheduled:
			if at, err := period.SessionTime(w.Date, w.Time); err == nil && in(at) {
				p.SessionsScheduled++
			}
		}
	}
	for i := range b.clients {
		if in(b.clients[i].JoinDate) {
			p.NewClients++
		}
	}
	p.Revenue = float64(p.SessionsCompleted) * rate
	return p
}

// Stats считает показатели тренера за период. Выручка равна числу
// проведённых тренировок, умноженному на стоимость сессии.
func (s *Service) Stats(ctx context.Context, owner string, p period.Period) (*Stats, error) {
	const op = "coaches.Stats"

	c, err := s.Profile(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	b, err := s.load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	now := s.coaches.Now()

	st := &Stats{Period: p}
	var (
		minutes int
		ratings []int
	)
	for i := range b.workouts {
		w := &b.workouts[i]
		if w.Status != models.WorkoutCompleted || !p.Contains(now, clients.SessionAt(w)) {
			continue
		}
		st.SessionsCompleted++
		minutes += w.Duration
		if w.Rating != nil {
			ratings = append(ratings, *w.Rating)
		}
	}
	for i := range b.clients {
		if p.Contains(now, b.clients[i].JoinDate) {
			st.NewClients++
		}
	}
	st.Revenue = float64(st.SessionsCompleted) * c.SessionRate
	st.AverageRating = average(ratings)
	st.TotalWorkoutHours = clients.Round1(float64(minutes) / 60)
	return st, nil
}

// ClientsOverview сводка по клиентам: удержание, активность за последние
// четыре недели и лучшие клиенты по числу проведённых тренировок.
func (s *Service) ClientsOverview(ctx context.Context, owner string) (*ClientsOverview, error) {
	const op = "coaches.ClientsOverview"

	if _, err := s.Profile(ctx, owner); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	b, err := s.load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	now := s.coaches.Now()

	o := &ClientsOverview{TotalClients: len(b.clients)}
	for i := range b.clients {
		cl := &b.clients[i]
		if cl.Status == models.ClientActive {
			o.ActiveClients++
		}
		if period.SameMonth(cl.JoinDate, now) {
			o.NewThisMonth++
		}
	}
	if o.TotalClients > 0 {
		o.RetentionRate = int(math.Round(float64(o.ActiveClients) * 100 / float64(o.TotalClients)))
	}

	type tally struct {
		sessions int
		ratings  []int
	}
	tallies := make(map[string]*tally)
	recent := 0
	since := now.AddDate(0, 0, -28)
	var activity []ClientActivity
	for i := range b.workouts {
		w := &b.workouts[i]
		switch w.Status {
		case models.WorkoutCompleted:
			at := clients.SessionAt(w)
			if !at.Before(since) && !at.After(now) {
				recent++
			}
			t, ok := tallies[w.ClientID]
			if !ok {
				t = &tally{}
				tallies[w.ClientID] = t
			}
			t.sessions++
			if w.Rating != nil {
				t.ratings = append(t.ratings, *w.Rating)
			}
			activity = append(activity, ClientActivity{ClientName: w.ClientName, Action: "Completed workout", Timestamp: at})
		case models.WorkoutScheduled:
			activity = append(activity, ClientActivity{ClientName: w.ClientName, Action: "Scheduled session", Timestamp: w.CreatedAt})
		}
	}
	o.AverageSessionsPerWeek = clients.Round1(float64(recent) / 4)

	o.TopPerformers = []Performer{}
	for i := range b.clients {
		cl := &b.clients[i]
		t, ok := tallies[cl.ID]
		if !ok {
			continue
		}
		o.TopPerformers = append(o.TopPerformers, Performer{
			Name:              cl.Name,
			SessionsCompleted: t.sessions,
			ProgressScore:     int(math.Round(average(t.ratings) * 20)),
		})
	}
	sort.SliceStable(o.TopPerformers, func(i, j int) bool {
		x, y := o.TopPerformers[i], o.TopPerformers[j]
		if x.SessionsCompleted != y.SessionsCompleted {
			return x.SessionsCompleted > y.SessionsCompleted
		}
		if x.ProgressScore != y.ProgressScore {
			return x.ProgressScore > y.ProgressScore
		}
		return x.Name < y.Name
	})
	if len(o.TopPerformers) > topPerformersLimit {
		o.TopPerformers = o.TopPerformers[:topPerformersLimit]
	}

	sort.SliceStable(activity, func(i, j int) bool { return activity[i].Timestamp.After(activity[j].Timestamp) })
	if len(activity) > recentActivityLimit {
		activity = activity[:recentActivityLimit]
	}
	if activity == nil {
		activity = []ClientActivity{}
	}
	o.RecentActivity = activity

	return o, nil
}

// TypeLabel отображаемое название вида тренировки.
func TypeLabel(t models.WorkoutType) string {
	switch t {
	case models.WorkoutStrength:
		return "Strength Training"
	case models.WorkoutCardio:
		return "Cardiovascular"
	case models.WorkoutFlexibility:
		return "Flexibility & Mobility"
	case models.WorkoutSports:
		return "Sports Training"
	case models.WorkoutRehabilitation:
		return "Rehabilitation"
	default:
		return string(t)
	}
}

func average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return clients.Round1(float64(sum) / float64(len(values)))
}

// ABOUTME: Six-week two-split program: two main lifts on days 1 and 2, optional day 3.
// ABOUTME: Percentages climb 2.5 per week through week 5; week 6 deloads everything to 60.
package program

import "github.com/harperreed/liftlog/internal/models"

// SixWeekID identifies the six-week two-split program.
const SixWeekID = "6week_2split"

const (
	sixWeekLength  = 6
	sixWeekDeload  = 6
	deloadPercent  = 60.0
	weeklyIncrease = 2.5
)

var sixWeekWarmup = []string{
	"5–10 min light cardio",
	"Dynamic mobility (hips, shoulders)",
	"Light warm-up sets with the bar",
}

var sixWeekMain = struct {
	bench, backSquat, frontSquat, deadlift, pushPress schemeTable
}{
	bench:      schemeTable{lift: models.LiftBench, base: []models.Scheme{pct(70, 3, n(5)), pct(75, 2, n(5)), pct(80, 1, n(5))}},
	backSquat:  schemeTable{lift: models.LiftBackSquat, base: []models.Scheme{pct(70, 3, n(5)), pct(75, 2, n(5)), pct(80, 1, n(5))}},
	frontSquat: schemeTable{lift: models.LiftFrontSquat, base: []models.Scheme{pct(65, 3, n(5)), pct(70, 2, n(5)), pct(75, 1, n(5))}},
	deadlift:   schemeTable{lift: models.LiftDeadlift, base: []models.Scheme{pct(70, 2, n(5)), pct(75, 2, n(5)), pct(80, 1, n(5))}},
	pushPress:  schemeTable{lift: models.LiftPushPress, base: []models.Scheme{pct(60, 3, n(5)), pct(65, 2, n(5)), pct(70, 1, n(5))}},
}

// accessoryPair holds the odd-week and even-week variants of one pool.
type accessoryPair struct {
	odd, even []models.Accessory
}

func (p accessoryPair) forWeek(odd bool) []models.Accessory {
	src := p.even
	if odd {
		src = p.odd
	}
	out := make([]models.Accessory, len(src))
	copy(out, src)
	return out
}

var sixWeekPool = struct {
	chest, quads, back, biceps, core accessoryPair
}{
	chest: accessoryPair{
		odd:  []models.Accessory{{Name: "DB Incline Bench", Sets: 3, Reps: txt("8–10")}, {Name: "DB/Cable Fly", Sets: 3, Reps: txt("12–15")}},
		even: []models.Accessory{{Name: "Barbell/Smith Incline Bench", Sets: 3, Reps: txt("8–10")}, {Name: "Cable Crossover", Sets: 3, Reps: txt("12–15")}},
	},
	quads: accessoryPair{
		odd:  []models.Accessory{{Name: "Leg Press", Sets: 4, Reps: txt("10–15")}, {Name: "Leg Extension", Sets: 3, Reps: txt("12–15")}},
		even: []models.Accessory{{Name: "Barbell Lunge", Sets: 4, Reps: txt("8+8")}, {Name: "Sissy Squat + Leg Extension (superset)", Sets: 3, Reps: txt("rounds")}},
	},
	back: accessoryPair{
		odd: []models.Accessory{
			{Name: "Close-grip Pull-up / Chin-up", Sets: 4, Reps: txt("6–10")},
			{Name: "Barbell Row", Sets: 4, Reps: n(8)},
			{Name: "RDL / Trap Bar RDL", Sets: 3, Reps: txt("8–10")},
			{Name: "Face Pull", Sets: 3, Reps: txt("12–15")},
		},
		even: []models.Accessory{
			{Name: "Wide-grip Lat Pulldown", Sets: 4, Reps: txt("8–10")},
			{Name: "Seated Row / T-bar Row", Sets: 4, Reps: n(8)},
			{Name: "Good Morning / Reverse Hyper", Sets: 3, Reps: txt("8–10")},
			{Name: "Reverse Fly / Y-raise", Sets: 3, Reps: txt("12–15")},
		},
	},
	biceps: accessoryPair{
		odd:  []models.Accessory{{Name: "Barbell Curl", Sets: 3, Reps: txt("8–10")}, {Name: "Hammer Curl (DB)", Sets: 3, Reps: txt("10–12")}},
		even: []models.Accessory{{Name: "DB Curl", Sets: 3, Reps: txt("8–10")}, {Name: "Preacher Curl", Sets: 3, Reps: txt("10–12")}},
	},
	core: accessoryPair{
		odd:  []models.Accessory{{Name: "Ab Wheel / Heavy Cable Crunch", Sets: 4, Reps: txt("8–10")}, {Name: "Toes-to-bar / Hanging Leg Raise", Sets: 3, Reps: txt("15–20")}},
		even: []models.Accessory{{Name: "Ab Wheel / Cable Crunch", Sets: 4, Reps: txt("8–10")}, {Name: "Cable Crunch + Plank (superset)", Sets: 3, Reps: txt("15–20 / 45s")}},
	},
}

// bump raises every percent by 2.5 per week after the first. The deload
// week replaces every percent with 60 instead.
func bump(rows []models.Scheme, week int) []models.Scheme {
	out := cloneSchemes(rows)
	if week == sixWeekDeload {
		for i := range out {
			out[i].Percent = deloadPercent
		}
		return out
	}
	add := float64(week-1) * weeklyIncrease
	for i := range out {
		out[i].Percent += add
	}
	return out
}

// SixWeek generates the six-week two-split program.
func SixWeek() ([]models.WeekData, error) {
	weeks := make([]models.WeekData, 0, sixWeekLength)
	for week := 1; week <= sixWeekLength; week++ {
		odd := week%2 == 1
		squat := squatFor(week)

		day1, err := sixWeekDayOne(week, odd, squat)
		if err != nil {
			return nil, err
		}
		day2, err := sixWeekDayTwo(week, odd)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, models.WeekData{
			Week:      week,
			SquatType: squat,
			Days:      []models.Session{day1, day2, sixWeekDayThree(odd)},
		})
	}
	return weeks, nil
}

func sixWeekDayOne(week int, odd bool, squat models.Lift) (models.Session, error) {
	squatTable := sixWeekMain.backSquat
	if squat == models.LiftFrontSquat {
		squatTable = sixWeekMain.frontSquat
	}
	squatRows, err := squatTable.lookup(SixWeekID, week)
	if err != nil {
		return models.Session{}, err
	}
	benchRows, err := sixWeekMain.bench.lookup(SixWeekID, week)
	if err != nil {
		return models.Session{}, err
	}

	acc := sixWeekPool.chest.forWeek(odd)
	acc = append(acc, sixWeekPool.quads.forWeek(odd)...)
	acc = append(acc, sixWeekPool.core.forWeek(odd)...)

	return models.Session{
		Day:    1,
		Title:  "Bench + Squat Day",
		Warmup: cloneStrings(sixWeekWarmup),
		Main: []models.MainBlock{
			{Lift: squat, Scheme: bump(squatRows, week)},
			{Lift: models.LiftBench, Scheme: bump(benchRows, week)},
		},
		Accessories: acc,
	}, nil
}

func sixWeekDayTwo(week int, odd bool) (models.Session, error) {
	dlRows, err := sixWeekMain.deadlift.lookup(SixWeekID, week)
	if err != nil {
		return models.Session{}, err
	}
	ppRows, err := sixWeekMain.pushPress.lookup(SixWeekID, week)
	if err != nil {
		return models.Session{}, err
	}

	acc := sixWeekPool.back.forWeek(odd)
	acc = append(acc, sixWeekPool.biceps.forWeek(odd)...)
	acc = append(acc, sixWeekPool.core.forWeek(odd)...)

	return models.Session{
		Day:    2,
		Title:  "Deadlift + Push Press Day",
		Warmup: cloneStrings(sixWeekWarmup),
		Main: []models.MainBlock{
			{Lift: models.LiftDeadlift, Scheme: bump(dlRows, week)},
			{Lift: models.LiftPushPress, Scheme: bump(ppRows, week)},
		},
		Accessories: acc,
	}, nil
}

// sixWeekDayThree is technique work with no prescribed rows, plus a benchmark.
func sixWeekDayThree(odd bool) models.Session {
	lift := models.LiftCleanJerk
	if odd {
		lift = models.LiftSnatch
	}
	return models.Session{
		Day:    3,
		Title:  "OPTIONAL: Weightlifting or CrossFit Benchmark",
		Warmup: cloneStrings(sixWeekWarmup),
		Main: []models.MainBlock{
			{Lift: lift, Note: "technique, 50–65%", Scheme: []models.Scheme{}},
		},
		Accessories: []models.Accessory{
			{Name: "CF Benchmark (choose one): DT / Diane / Lynne / Cindy / Macho Man / Fran", Sets: 1, Reps: txt("pick one")},
		},
	}
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

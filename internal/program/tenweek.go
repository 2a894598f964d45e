// ABOUTME: Ten-week weightlifting program: four sessions a week, one main lift each.
// ABOUTME: Squat variant alternates by week parity; day 4 alternates deadlift and bench.
package program

import (
	"fmt"

	"github.com/harperreed/liftlog/internal/models"
)

// TenWeekID identifies the ten-week program.
const TenWeekID = "10week"

const tenWeekLength = 10

var tenWeekMain = struct {
	snatch, cj, deadlift, bench, backSquat, frontSquat schemeTable
}{
	snatch: schemeTable{lift: models.LiftSnatch, weeks: map[int][]models.Scheme{
		1:  {pct(55, 2, n(3)), pct(60, 2, n(3)), pct(65, 2, n(3))},
		2:  {pct(60, 2, n(3)), pct(65, 2, n(3)), pct(70, 2, n(3))},
		3:  {pct(70, 3, n(2)), pct(72, 3, n(2))},
		4:  {pct(72, 2, n(2)), pct(75, 2, n(2)), pct(78, 2, n(2))},
		5:  {pct(75, 3, n(2)), pct(80, 3, n(2))},
		6:  {pct(78, 2, n(2)), pct(82, 2, n(2))},
		7:  {pct(80, 2, n(2)), pct(85, 2, n(1))},
		8:  {pct(82, 3, n(1)), pct(85, 2, n(1))},
		9:  {pct(85, 3, n(1), "build heavy singles"), pct(88, 1, n(1)), pct(90, 1, n(1))},
		10: {pct(60, 2, n(2)), pct(65, 1, n(2)), pct(70, 1, n(2))},
	}},
	cj: schemeTable{lift: models.LiftCleanJerk, weeks: map[int][]models.Scheme{
		1:  {pct(55, 4, txt("1+1")), pct(60, 2, txt("1+1")), pct(65, 2, txt("1+1"))},
		2:  {pct(60, 4, txt("1+1")), pct(65, 2, txt("1+1")), pct(70, 2, txt("1+1"))},
		3:  {pct(70, 3, txt("1+1")), pct(75, 3, txt("1+1"))},
		4:  {pct(72, 2, txt("1+1")), pct(78, 2, txt("1+1"))},
		5:  {pct(75, 3, txt("1+1")), pct(80, 3, txt("1+1"))},
		6:  {pct(78, 2, txt("1+1")), pct(82, 2, txt("1+1"))},
		7:  {pct(80, 3, txt("1+1")), pct(85, 2, txt("1+1"))},
		8:  {pct(82, 3, txt("1+1")), pct(85, 2, txt("1+1"))},
		9:  {pct(85, 2, txt("1+1")), pct(88, 1, txt("1+1")), pct(90, 1, txt("1+1"))},
		10: {pct(60, 2, txt("1+1")), pct(65, 1, txt("1+1")), pct(70, 1, txt("1+1"))},
	}},
	deadlift: schemeTable{lift: models.LiftDeadlift, weeks: map[int][]models.Scheme{
		1: {pct(60, 1, n(5)), pct(65, 1, n(5)), pct(70, 3, n(5))},
		3: {pct(70, 1, n(4)), pct(75, 3, n(4))},
		5: {pct(75, 1, n(4)), pct(80, 3, n(4))},
		7: {pct(80, 4, n(3))},
		9: {pct(85, 3, n(3))},
	}},
	bench: schemeTable{lift: models.LiftBench, weeks: map[int][]models.Scheme{
		2:  {pct(60, 1, n(6)), pct(65, 1, n(6)), pct(70, 3, n(5))},
		4:  {pct(72, 4, n(4))},
		6:  {pct(75, 4, n(4))},
		8:  {pct(80, 4, n(3))},
		10: {pct(60, 3, n(5))},
	}},
	backSquat: schemeTable{
		lift: models.LiftBackSquat,
		base: []models.Scheme{pct(60, 2, n(5)), pct(70, 2, n(4)), pct(75, 2, n(4))},
		weeks: map[int][]models.Scheme{
			3: {pct(70, 2, n(4)), pct(75, 2, n(4)), pct(80, 1, n(3))},
			5: {pct(75, 2, n(4)), pct(80, 2, n(3))},
			7: {pct(80, 3, n(3))},
			9: {pct(85, 3, n(2))},
		},
	},
	frontSquat: schemeTable{
		lift: models.LiftFrontSquat,
		base: []models.Scheme{pct(60, 2, n(5)), pct(65, 2, n(4)), pct(70, 2, n(4))},
		weeks: map[int][]models.Scheme{
			4:  {pct(70, 2, n(4)), pct(75, 2, n(3))},
			6:  {pct(75, 3, n(3))},
			8:  {pct(80, 3, n(2))},
			10: {pct(60, 3, n(3))},
		},
	},
}

var tenWeekPool = struct {
	warm, snatchBar, cjBar, squatBar, deadliftBar, upper, lower, core []string
}{
	warm: []string{
		"SAS / band warm-up", "Bird Dog", "Glute Bridge", "Superman / Hyper",
		"Overhead Duck Walk", "T-plank", "90/90 Hip Flow", "Rack Lats Stretch",
		"Shoulder Spins", "Hip Mobilization",
	},
	snatchBar:   []string{"Snatch Pull (to knee)"},
	cjBar:       []string{"Push Press", "Jerk Behind Neck (tech)", "Clean Pull (to knee)"},
	squatBar:    []string{"Paused Squat (3s)", "Tempo Squat (3-0-3)"},
	deadliftBar: []string{"Romanian Deadlift", "Good Morning", "Snatch Grip RDL"},
	upper: []string{
		"DB Lateral Raise", "Rear Delt Fly (DB/Cable)", "Incline DB Press",
		"Lat Pulldown / Pull-up", "Seated Cable Row", "Face Pull", "Single-arm DB Row",
		"Cable Fly", "Triceps Pressdown", "Biceps Curl (DB)",
	},
	lower: []string{
		"Walking Lunges", "Leg Press", "Hack/Goblet Squat", "Hamstring Curl (machine)",
		"Reverse Hyper", "Seated Calf Raise", "Standing Calf Raise", "Spanish Squat",
	},
	core: []string{
		"Hanging Leg Raise", "Cable Crunch", "Pallof Press", "Back Extension",
		"Weighted Plank 30–45s", "Dead Bug", "Side Plank 30–45s",
	},
}

// squatFor returns the squat variant for a week: back squat on odd weeks,
// front squat on even weeks.
func squatFor(week int) models.Lift {
	if week%2 == 1 {
		return models.LiftBackSquat
	}
	return models.LiftFrontSquat
}

// TenWeek generates the ten-week program.
func TenWeek() ([]models.WeekData, error) {
	weeks := make([]models.WeekData, 0, tenWeekLength)
	for week := 1; week <= tenWeekLength; week++ {
		w, err := tenWeekWeek(week)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, nil
}

func tenWeekWeek(week int) (models.WeekData, error) {
	m := tenWeekMain
	p := tenWeekPool
	squat := squatFor(week)
	odd := week%2 == 1

	snatch, err := m.snatch.lookup(TenWeekID, week)
	if err != nil {
		return models.WeekData{}, err
	}
	cj, err := m.cj.lookup(TenWeekID, week)
	if err != nil {
		return models.WeekData{}, err
	}
	squatTable := m.backSquat
	if squat == models.LiftFrontSquat {
		squatTable = m.frontSquat
	}
	squatRows, err := squatTable.lookup(TenWeekID, week)
	if err != nil {
		return models.WeekData{}, err
	}

	snatchAcc := []models.Accessory{{Name: p.snatchBar[0], Sets: 3, Reps: n(3)}}
	snatchAcc = append(snatchAcc, accessories(Pick(p.upper, 3, week*13+1), 3, n(10))...)
	snatchAcc = append(snatchAcc, models.Accessory{Name: pickOne(p.core, week*17+1), Sets: 3, Reps: n(12)})

	squatAcc := []models.Accessory{{Name: pickOne(p.squatBar, week*5+2), Sets: 3, Reps: n(3)}}
	squatAcc = append(squatAcc, accessories(Pick(p.lower, 2, week*7+2), 3, n(12))...)
	squatAcc = append(squatAcc, models.Accessory{Name: pickOne(p.core, week*9+2), Sets: 3, Reps: n(12)})

	cjBar := pickOne(p.cjBar, week*19+3)
	if week == 3 {
		cjBar = "Push Press"
	}
	cjAcc := []models.Accessory{{Name: cjBar, Sets: 3, Reps: n(3)}}
	cjAcc = append(cjAcc, accessories(Pick(p.upper, 3, week*23+3), 3, n(10))...)
	cjAcc = append(cjAcc, models.Accessory{Name: pickOne(p.core, week*29+3), Sets: 3, Reps: n(12)})

	days := []models.Session{
		{
			Day:         1,
			Title:       "Snatch Day",
			Warmup:      Pick(p.warm, 3, week*11+1),
			Main:        []models.MainBlock{{Lift: models.LiftSnatch, Scheme: snatch}},
			Accessories: snatchAcc,
		},
		{
			Day:         2,
			Title:       fmt.Sprintf("%s Day", squat),
			Warmup:      Pick(p.warm, 3, week*11+2),
			Main:        []models.MainBlock{{Lift: squat, Scheme: squatRows}},
			Accessories: squatAcc,
		},
		{
			Day:         3,
			Title:       "Clean & Jerk Day",
			Warmup:      Pick(p.warm, 3, week*11+3),
			Main:        []models.MainBlock{{Lift: models.LiftCleanJerk, Scheme: cj}},
			Accessories: cjAcc,
		},
	}

	day4, err := tenWeekDayFour(week, odd)
	if err != nil {
		return models.WeekData{}, err
	}
	days = append(days, day4)

	return models.WeekData{Week: week, SquatType: squat, Days: days}, nil
}

// tenWeekDayFour is deadlift on odd weeks and bench press on even weeks.
func tenWeekDayFour(week int, odd bool) (models.Session, error) {
	m := tenWeekMain
	p := tenWeekPool
	warmup := Pick(p.warm, 3, week*11+4)

	if odd {
		rows, err := m.deadlift.lookup(TenWeekID, week)
		if err != nil {
			return models.Session{}, err
		}
		acc := []models.Accessory{{Name: pickOne(p.deadliftBar, week*31+4), Sets: 3, Reps: n(6)}}
		acc = append(acc, accessories(Pick(p.lower, 2, week*37+4), 3, n(10))...)
		acc = append(acc, models.Accessory{Name: pickOne(p.core, week*41+4), Sets: 3, Reps: n(12)})
		return models.Session{
			Day:         4,
			Title:       "Deadlift Day",
			Warmup:      warmup,
			Main:        []models.MainBlock{{Lift: models.LiftDeadlift, Scheme: rows}},
			Accessories: acc,
		}, nil
	}

	rows, err := m.bench.lookup(TenWeekID, week)
	if err != nil {
		return models.Session{}, err
	}
	acc := accessories(Pick(p.upper, 4, week*43+4), 3, n(10))
	acc = append(acc, models.Accessory{Name: pickOne(p.core, week*47+4), Sets: 3, Reps: n(12)})
	return models.Session{
		Day:         4,
		Title:       "Bench Press Day",
		Warmup:      warmup,
		Main:        []models.MainBlock{{Lift: models.LiftBench, Scheme: rows}},
		Accessories: acc,
	}, nil
}

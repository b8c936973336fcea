package model

// Category identifies one tracker list inside the document.
type Category string

const (
	CategoryWeight        Category = "weight"
	CategoryFasting       Category = "fasting"
	CategoryCarbs         Category = "carbs"
	CategoryCalories      Category = "calories"
	CategorySteps         Category = "steps"
	CategorySleep         Category = "sleep"
	CategoryMood          Category = "mood"
	CategoryWater         Category = "water"
	CategoryWorkouts      Category = "workouts"
	CategoryEntertainment Category = "entertainment"
	CategoryHomework      Category = "homework"
	CategoryChores        Category = "chores"
	CategorySubstances    Category = "substances"
)

// Categories lists every tracker category in document order.
var Categories = []Category{
	CategoryWeight, CategoryFasting, CategoryCarbs, CategoryCalories,
	CategorySteps, CategorySleep, CategoryMood, CategoryWater,
	CategoryWorkouts, CategoryEntertainment, CategoryHomework,
	CategoryChores, CategorySubstances,
}

// MetaList identifies one user-managed lookup list.
type MetaList string

const (
	MetaWorkouts      MetaList = "workouts"
	MetaSubjects      MetaList = "subjects"
	MetaChildren      MetaList = "children"
	MetaChores        MetaList = "chores"
	MetaSubstances    MetaList = "substances"
	MetaEntertainment MetaList = "entertainment"
)

var MetaLists = []MetaList{
	MetaWorkouts, MetaSubjects, MetaChildren,
	MetaChores, MetaSubstances, MetaEntertainment,
}

// MetaItem is a named lookup entry referenced from tracker entries by id.
type MetaItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Meta struct {
	Workouts      []MetaItem `json:"workouts"`
	Subjects      []MetaItem `json:"subjects"`
	Children      []MetaItem `json:"children"`
	Chores        []MetaItem `json:"chores"`
	Substances    []MetaItem `json:"substances"`
	Entertainment []MetaItem `json:"entertainment"`
}

// Settings holds nullable user preferences. A nil pointer means "not
// configured" and suppresses any derivation that depends on the value.
type Settings struct {
	Theme             string   `json:"theme"`
	StartingWeightLbs *float64 `json:"startingWeightLbs"`
	GoalWeightLbs     *float64 `json:"goalWeightLbs"`
	LossPerWeekLbs    *float64 `json:"lossPerWeekLbs"`
	DietStartDate     string   `json:"dietStartDate"`
	CarbLimitG        *float64 `json:"carbLimitG"`
	CalorieLimit      *float64 `json:"calorieLimit"`
	StepGoal          *float64 `json:"stepGoal"`
	DesiredSleepHours *float64 `json:"desiredSleepHours"`
	WaterGoalOz       *float64 `json:"waterGoalOz"`
}

// Entry is the base shared by every tracker entry variant.
type Entry interface {
	EntryID() string
	EntryDate() string
}

type WeightEntry struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	WeightLbs float64 `json:"weightLbs"`
}

type FastingEntry struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type CarbEntry struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`
	Grams float64 `json:"grams"`
	Note  string  `json:"note"`
}

type CalorieEntry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Note   string  `json:"note"`
}

type StepsEntry struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`
	Count float64 `json:"count"`
}

type SleepEntry struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	BedTime  string  `json:"bedTime"`
	WakeTime string  `json:"wakeTime"`
	Note     string  `json:"note"`
}

type MoodEntry struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Note  string  `json:"note"`
}

type WaterEntry struct {
	ID     string  `json:"id"`
	Date   string  `json:"date"`
	Ounces float64 `json:"ounces"`
}

// Activity is one timed reference into a meta list, used by the workouts
// and entertainment categories.
type Activity struct {
	MetaID  string  `json:"metaId"`
	Minutes float64 `json:"minutes"`
}

type ActivityEntry struct {
	ID         string     `json:"id"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	Note       string     `json:"note"`
}

type HomeworkEntry struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	ChildID   string  `json:"childId"`
	SubjectID string  `json:"subjectId"`
	Minutes   float64 `json:"minutes"`
	Note      string  `json:"note"`
}

type ChoreEntry struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	ChoreIDs []string `json:"choreIds"`
	Note     string   `json:"note"`
}

type SubstanceEntry struct {
	ID           string   `json:"id"`
	Date         string   `json:"date"`
	SubstanceIDs []string `json:"substanceIds"`
	Note         string   `json:"note"`
}

type Trackers struct {
	Weight        []WeightEntry    `json:"weight"`
	Fasting       []FastingEntry   `json:"fasting"`
	Carbs         []CarbEntry      `json:"carbs"`
	Calories      []CalorieEntry   `json:"calories"`
	Steps         []StepsEntry     `json:"steps"`
	Sleep         []SleepEntry     `json:"sleep"`
	Mood          []MoodEntry      `json:"mood"`
	Water         []WaterEntry     `json:"water"`
	Workouts      []ActivityEntry  `json:"workouts"`
	Entertainment []ActivityEntry  `json:"entertainment"`
	Homework      []HomeworkEntry  `json:"homework"`
	Chores        []ChoreEntry     `json:"chores"`
	Substances    []SubstanceEntry `json:"substances"`
}

// Document is the entire persisted application state.
type Document struct {
	Version   string   `json:"version"`
	UpdatedAt string   `json:"updatedAt"`
	Settings  Settings `json:"settings"`
	Meta      Meta     `json:"meta"`
	Trackers  Trackers `json:"trackers"`
}

func (e WeightEntry) EntryID() string      { return e.ID }
func (e WeightEntry) EntryDate() string    { return e.Date }
func (e FastingEntry) EntryID() string     { return e.ID }
func (e FastingEntry) EntryDate() string   { return e.Date }
func (e CarbEntry) EntryID() string        { return e.ID }
func (e CarbEntry) EntryDate() string      { return e.Date }
func (e CalorieEntry) EntryID() string     { return e.ID }
func (e CalorieEntry) EntryDate() string   { return e.Date }
func (e StepsEntry) EntryID() string       { return e.ID }
func (e StepsEntry) EntryDate() string     { return e.Date }
func (e SleepEntry) EntryID() string       { return e.ID }
func (e SleepEntry) EntryDate() string     { return e.Date }
func (e MoodEntry) EntryID() string        { return e.ID }
func (e MoodEntry) EntryDate() string      { return e.Date }
func (e WaterEntry) EntryID() string       { return e.ID }
func (e WaterEntry) EntryDate() string     { return e.Date }
func (e ActivityEntry) EntryID() string    { return e.ID }
func (e ActivityEntry) EntryDate() string  { return e.Date }
func (e HomeworkEntry) EntryID() string    { return e.ID }
func (e HomeworkEntry) EntryDate() string  { return e.Date }
func (e ChoreEntry) EntryID() string       { return e.ID }
func (e ChoreEntry) EntryDate() string     { return e.Date }
func (e SubstanceEntry) EntryID() string   { return e.ID }
func (e SubstanceEntry) EntryDate() string { return e.Date }

package models

type Role string

const (
	RoleEmployee  Role = "employee"
	RoleAdmin     Role = "admin"
	RoleMainAdmin Role = "main_admin"
)

type MealType string

const (
	MealTypeBreakfast MealType = "Breakfast"
	MealTypeLunch     MealType = "Lunch"
	MealTypeSnacks    MealType = "Snacks"
	MealTypeDinner    MealType = "Dinner"
)

// MealTypes lists the four meal types in serving order.
var MealTypes = []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeSnacks, MealTypeDinner}

type WorkLocation string

const (
	LocationMainOffice WorkLocation = "Main Office"
	LocationWFH        WorkLocation = "Work From Home"
	LocationOther      WorkLocation = "Any other"
	LocationOnLeave    WorkLocation = "On Leave"
)

type NotificationTarget string

const (
	TargetAll        NotificationTarget = "all"
	TargetOfficeOnly NotificationTarget = "office_only"
)

type User struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Password     string       `json:"password,omitempty"`
	Role         Role         `json:"role"`
	EmployeeID   string       `json:"employeeId"`
	MobileNumber string       `json:"mobileNumber"`
	WorkLocation WorkLocation `json:"workLocation"`
}

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// WeeklyMenuTemplate holds one day's menu. Documents are keyed by the weekday
// index "0".."6"; a calendar date resolves to its template via the weekday.
type WeeklyMenuTemplate struct {
	ID        string     `json:"id,omitempty"`
	Breakfast []MenuItem `json:"Breakfast"`
	Lunch     []MenuItem `json:"Lunch"`
	Snacks    []MenuItem `json:"Snacks"`
	Dinner    []MenuItem `json:"Dinner"`
}

// DailyMenu is a template resolved onto a concrete date.
type DailyMenu struct {
	Date      string     `json:"date"`
	Breakfast []MenuItem `json:"Breakfast"`
	Lunch     []MenuItem `json:"Lunch"`
	Snacks    []MenuItem `json:"Snacks"`
	Dinner    []MenuItem `json:"Dinner"`
}

// MealConfirmation is keyed by userId-date; a missing document means
// "not yet decided", which readers treat as all four meals false.
type MealConfirmation struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"userId"`
	Date      string `json:"date"`
	Breakfast bool   `json:"Breakfast"`
	Lunch     bool   `json:"Lunch"`
	Snacks    bool   `json:"Snacks"`
	Dinner    bool   `json:"Dinner"`
}

// DailyWorkPlan overrides a user's default location for one day.
// Keyed by userId-date; absence defers to the user's default.
type DailyWorkPlan struct {
	ID       string       `json:"id,omitempty"`
	UserID   string       `json:"userId"`
	Date     string       `json:"date"`
	Location WorkLocation `json:"location"`
}

type Feedback struct {
	ID       string   `json:"id,omitempty"`
	UserID   string   `json:"userId"`
	UserName string   `json:"userName"`
	Date     string   `json:"date"`
	MealType MealType `json:"mealType"`
	Rating   int      `json:"rating"`
	Comment  string   `json:"comment"`
}

type Notification struct {
	ID             string             `json:"id,omitempty"`
	Title          string             `json:"title"`
	Message        string             `json:"message"`
	Timestamp      int64              `json:"timestamp"`
	RequiresAction bool               `json:"requiresAction"`
	Target         NotificationTarget `json:"target,omitempty"`
	Responses      map[string]string  `json:"responses,omitempty"`
}

type ConsolidatedReport struct {
	Date      string   `json:"date"`
	MealType  MealType `json:"mealType"`
	Confirmed int      `json:"confirmed"`
}

type EmployeeConfirmationDetails struct {
	User
	Confirmation MealConfirmation `json:"confirmation"`
}

type WorkforceDistribution struct {
	MainOffice int `json:"Main Office"`
	WFH        int `json:"Work From Home"`
	Other      int `json:"Any other"`
	OnLeave    int `json:"On Leave"`
	Total      int `json:"total"`
}

// Items returns the menu list for one meal type.
func (m DailyMenu) Items(mealType MealType) []MenuItem {
	switch mealType {
	case MealTypeBreakfast:
		return m.Breakfast
	case MealTypeLunch:
		return m.Lunch
	case MealTypeSnacks:
		return m.Snacks
	case MealTypeDinner:
		return m.Dinner
	}
	return nil
}

// Confirmed reports whether the confirmation opts in to the given meal.
func (c MealConfirmation) Confirmed(mealType MealType) bool {
	switch mealType {
	case MealTypeBreakfast:
		return c.Breakfast
	case MealTypeLunch:
		return c.Lunch
	case MealTypeSnacks:
		return c.Snacks
	case MealTypeDinner:
		return c.Dinner
	}
	return false
}

// SetConfirmed toggles one meal on the confirmation.
func (c *MealConfirmation) SetConfirmed(mealType MealType, status bool) {
	switch mealType {
	case MealTypeBreakfast:
		c.Breakfast = status
	case MealTypeLunch:
		c.Lunch = status
	case MealTypeSnacks:
		c.Snacks = status
	case MealTypeDinner:
		c.Dinner = status
	}
}

// AnyConfirmed reports whether at least one meal is opted in.
func (c MealConfirmation) AnyConfirmed() bool {
	return c.Breakfast || c.Lunch || c.Snacks || c.Dinner
}

func ValidMealType(value string) bool {
	switch MealType(value) {
	case MealTypeBreakfast, MealTypeLunch, MealTypeSnacks, MealTypeDinner:
		return true
	}
	return false
}

func ValidWorkLocation(value string) bool {
	switch WorkLocation(value) {
	case LocationMainOffice, LocationWFH, LocationOther, LocationOnLeave:
		return true
	}
	return false
}

package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Sujith2391/KARMIC-CANTEEN/internal/models"
	"github.com/Sujith2391/KARMIC-CANTEEN/internal/store"
)

// SeedMenus writes the seven weekday menu templates. Seeding uses Put with
// fixed ids so restarting the process never duplicates documents.
func SeedMenus(ctx context.Context, documents *store.Store) error {
	for weekday, template := range weeklyMenuSeed() {
		fields, err := models.Encode(template)
		if err != nil {
			return err
		}
		if err := documents.Put(ctx, models.CollectionWeeklyMenus, strconv.Itoa(weekday), fields); err != nil {
			return fmt.Errorf("seeding menu for weekday %d: %w", weekday, err)
		}
	}
	return nil
}

// SeedDemoAccounts writes the demonstration users: five employees, two
// canteen admins, and the HR main admin.
func SeedDemoAccounts(ctx context.Context, documents *store.Store) error {
	for _, user := range demoUserSeed() {
		id := user.ID
		user.ID = ""
		fields, err := models.Encode(user)
		if err != nil {
			return err
		}
		if err := documents.Put(ctx, models.CollectionUsers, id, fields); err != nil {
			return fmt.Errorf("seeding user %s: %w", id, err)
		}
	}
	return nil
}

func demoUserSeed() []models.User {
	return []models.User{
		{ID: "emp123", Name: "Alex Ray", Email: "alex.ray@karmic.co.in", Password: "password", Role: models.RoleEmployee, EmployeeID: "K001", MobileNumber: "9876543210", WorkLocation: models.LocationMainOffice},
		{ID: "emp124", Name: "Bethany Short", Email: "bethany.short@karmic.co.in", Password: "password", Role: models.RoleEmployee, EmployeeID: "K002", MobileNumber: "9876543211", WorkLocation: models.LocationWFH},
		{ID: "emp125", Name: "Charles Dane", Email: "charles.dane@karmic.co.in", Password: "password", Role: models.RoleEmployee, EmployeeID: "K003", MobileNumber: "9876543212", WorkLocation: models.LocationMainOffice},
		{ID: "emp126", Name: "Diana Prince", Email: "diana.prince@karmic.co.in", Password: "password", Role: models.RoleEmployee, EmployeeID: "K004", MobileNumber: "9876543213", WorkLocation: models.LocationOther},
		{ID: "emp127", Name: "Sharath Kumar", Email: "sharath.kumar@karmic.co.in", Password: "password", Role: models.RoleEmployee, EmployeeID: "K005", MobileNumber: "9876543214", WorkLocation: models.LocationMainOffice},
		{ID: "adm456", Name: "Casey Jordan", Email: "casey.jordan@canteen.karmic.com", Password: "password", Role: models.RoleAdmin, EmployeeID: "C001", MobileNumber: "8765432109", WorkLocation: models.LocationMainOffice},
		{ID: "adm457", Name: "Frank Miller", Email: "frank.miller@canteen.karmic.com", Password: "password", Role: models.RoleAdmin, EmployeeID: "C002", MobileNumber: "8765432108", WorkLocation: models.LocationMainOffice},
		{ID: "hr001", Name: "Harish Kumar", Email: "harish.kumar@hr.karmic.com", Password: "password", Role: models.RoleMainAdmin, EmployeeID: "H001", MobileNumber: "7654321098", WorkLocation: models.LocationMainOffice},
	}
}

func weeklyMenuSeed() []models.WeeklyMenuTemplate {
	return []models.WeeklyMenuTemplate{
		{ // Sunday
			Breakfast: []models.MenuItem{{ID: "b-sun-1", Name: "Pancakes", Description: "With maple syrup"}},
			Lunch:     []models.MenuItem{{ID: "l-sun-1", Name: "Roast Chicken", Description: "With vegetables"}},
			Snacks:    []models.MenuItem{{ID: "s-sun-1", Name: "Brownie", Description: "Fudgy chocolate brownie"}},
			Dinner:    []models.MenuItem{{ID: "d-sun-1", Name: "Mushroom Risotto", Description: "Creamy and savory"}},
		},
		{ // Monday
			Breakfast: []models.MenuItem{{ID: "b-mon-1", Name: "Oatmeal Porridge", Description: "With fruits and nuts"}},
			Lunch:     []models.MenuItem{{ID: "l-mon-1", Name: "Chicken Curry", Description: "With basmati rice"}},
			Snacks:    []models.MenuItem{{ID: "s-mon-1", Name: "Vegetable Samosa", Description: "Crispy and spicy"}},
			Dinner:    []models.MenuItem{{ID: "d-mon-1", Name: "Dal Makhani", Description: "With tandoori roti"}},
		},
		{ // Tuesday
			Breakfast: []models.MenuItem{{ID: "b-tue-1", Name: "Scrambled Eggs", Description: "Served with toast"}},
			Lunch:     []models.MenuItem{{ID: "l-tue-1", Name: "Paneer Butter Masala", Description: "With naan"}},
			Snacks:    []models.MenuItem{{ID: "s-tue-1", Name: "Fruit Salad", Description: "Fresh seasonal fruits"}},
			Dinner:    []models.MenuItem{{ID: "d-tue-1", Name: "Egg Fried Rice", Description: "With chili chicken"}},
		},
		{ // Wednesday
			Breakfast: []models.MenuItem{{ID: "b-wed-1", Name: "Idli Sambar", Description: "South Indian delight"}},
			Lunch:     []models.MenuItem{{ID: "l-wed-1", Name: "Vegetable Biryani", Description: "With raita"}},
			Snacks:    []models.MenuItem{{ID: "s-wed-1", Name: "Yogurt", Description: "Plain or flavored"}},
			Dinner:    []models.MenuItem{{ID: "d-wed-1", Name: "Chicken Noodle Soup", Description: "Hearty and warm"}},
		},
		{ // Thursday
			Breakfast: []models.MenuItem{{ID: "b-thu-1", Name: "Corn Flakes", Description: "With milk"}},
			Lunch:     []models.MenuItem{{ID: "l-thu-1", Name: "Pasta Arrabiata", Description: "Spicy tomato sauce pasta"}},
			Snacks:    []models.MenuItem{{ID: "s-thu-1", Name: "Cookies", Description: "Chocolate chip cookies"}},
			Dinner:    []models.MenuItem{{ID: "d-thu-1", Name: "Vegetable Korma", Description: "With chapati"}},
		},
		{ // Friday
			Breakfast: []models.MenuItem{{ID: "b-fri-1", Name: "Aloo Paratha", Description: "With curd and pickle"}},
			Lunch:     []models.MenuItem{{ID: "l-fri-1", Name: "Fish and Chips", Description: "Classic comfort food"}},
			Snacks:    []models.MenuItem{{ID: "s-fri-1", Name: "Popcorn", Description: "Salted popcorn"}},
			Dinner:    []models.MenuItem{{ID: "d-fri-1", Name: "Mutton Rogan Josh", Description: "Aromatic lamb curry"}},
		},
		{ // Saturday
			Breakfast: []models.MenuItem{{ID: "b-sat-1", Name: "Dosa", Description: "With chutney and sambar"}},
			Lunch:     []models.MenuItem{{ID: "l-sat-1", Name: "Pizza Margherita", Description: "Simple and delicious"}},
			Snacks:    []models.MenuItem{{ID: "s-sat-1", Name: "Nachos", Description: "With cheese and salsa"}},
			Dinner:    []models.MenuItem{{ID: "d-sat-1", Name: "Khichdi", Description: "Light and wholesome"}},
		},
	}
}

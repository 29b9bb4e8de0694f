package demos

import (
	"fmt"
	"strings"
)

type employee struct {
	ID         string
	Name       string
	Salary     float64
	Department string
}

func (e employee) String() string {
	return fmt.Sprintf("%s - %s - %.0f - %s", e.ID, e.Name, e.Salary, e.Department)
}

type transaction struct {
	ID       string
	Amount   float64
	Currency string
}

func (t transaction) String() string {
	return fmt.Sprintf("%s - %.1f - %s", t.ID, t.Amount, t.Currency)
}

type order struct {
	ID      string
	Product string
	Price   float64
}

func (o order) String() string {
	return fmt.Sprintf("%s - %s - %.0f", o.ID, o.Product, o.Price)
}

type product struct {
	Name  string
	Price float64
}

func (p product) String() string {
	return fmt.Sprintf("%s - %.0f", p.Name, p.Price)
}

type purchase struct {
	ID     string
	Amount float64
}

func (p purchase) String() string {
	return fmt.Sprintf("%s - %.1f", p.ID, p.Amount)
}

type customer struct {
	ID     string
	Name   string
	Orders []purchase
}

func (c customer) String() string {
	return fmt.Sprintf("%s (%d orders)", c.Name, len(c.Orders))
}

type student struct {
	ID    string
	Name  string
	Marks int
}

func (s student) String() string {
	return fmt.Sprintf("%s - %s - %d marks", s.ID, s.Name, s.Marks)
}

type catalogItem struct {
	Name     string
	Category string
	Price    float64
}

func (c catalogItem) String() string {
	return fmt.Sprintf("%s (%s) - $%.0f", c.Name, c.Category, c.Price)
}

type skilledEmployee struct {
	Name       string
	Salary     float64
	Department string
	Skills     []string
}

func (e skilledEmployee) String() string {
	return fmt.Sprintf("%s - $%.0f - %s [%s]", e.Name, e.Salary, e.Department, strings.Join(e.Skills, ", "))
}

type placement struct {
	Name       string
	Department string
	Location   string
	Level      string
	Salary     float64
}

func (p placement) String() string {
	return fmt.Sprintf("%s - %s - %s - %s", p.Name, p.Department, p.Location, p.Level)
}

// Field accessors shared by the problems.

func employeeName(e employee) string       { return e.Name }
func employeeSalary(e employee) float64    { return e.Salary }
func employeeDepartment(e employee) string { return e.Department }

func staff() []employee {
	return []employee{
		{"E001", "Ravi", 45000, "IT"},
		{"E002", "Priya", 65000, "HR"},
		{"E003", "Arjun", 55000, "IT"},
		{"E004", "Sneha", 72000, "Finance"},
		{"E005", "Kiran", 48000, "IT"},
		{"E006", "Meera", 58000, "HR"},
		{"E007", "Raj", 82000, "Finance"},
	}
}

// findFirstStaff is the first five members of staff.
func findFirstStaff() []employee {
	return staff()[:5]
}

func rankingStaff() []employee {
	return []employee{
		{"E001", "Ravi", 75000, "IT"},
		{"E002", "Priya", 65000, "HR"},
		{"E003", "Arjun", 85000, "IT"},
		{"E004", "Sneha", 72000, "Finance"},
		{"E005", "Kiran", 55000, "IT"},
		{"E006", "Meera", 58000, "HR"},
		{"E007", "Raj", 92000, "Finance"},
		{"E008", "Amit", 80000, "IT"},
	}
}

func transactions() []transaction {
	return []transaction{
		{"T1", 1000, "INR"},
		{"T2", 500, "USD"},
		{"T3", 2500, "INR"},
		{"T4", 800, "INR"},
		{"T5", 1200, "EUR"},
	}
}

func orders() []order {
	return []order{
		{"ORD-001", "Laptop", 75000},
		{"ORD-002", "Mouse", 500},
		{"ORD-003", "Laptop", 75000},
		{"ORD-004", "Keyboard", 2000},
	}
}

func products() []product {
	return []product{
		{"Phone", 50000},
		{"Laptop", 75000},
		{"Phone", 60000},
		{"Mouse", 500},
		{"Laptop", 80000},
		{"Keyboard", 2000},
	}
}

func customers() []customer {
	return []customer{
		{"C1", "Ravi", []purchase{{"ORD-001", 1500}, {"ORD-002", 2500}}},
		{"C2", "Priya", []purchase{{"ORD-003", 800}, {"ORD-004", 3200}, {"ORD-005", 1100}}},
		{"C3", "Arjun", []purchase{{"ORD-006", 4500}}},
		{"C4", "Empty", nil},
	}
}

func students() []student {
	return []student{
		{"S001", "Ravi", 75},
		{"S002", "Priya", 35},
		{"S003", "Arjun", 42},
		{"S004", "Sneha", 28},
		{"S005", "Kiran", 88},
		{"S006", "Meera", 39},
		{"S007", "Raj", 55},
	}
}

func catalog() []catalogItem {
	return []catalogItem{
		{"iPhone", "Electronics", 999},
		{"Samsung TV", "Electronics", 1299},
		{"MacBook", "Electronics", 1999},
		{"Dell Laptop", "Electronics", 899},
		{"Sony Headphones", "Electronics", 299},
		{"Sofa", "Furniture", 599},
		{"Dining Table", "Furniture", 799},
		{"Office Chair", "Furniture", 349},
		{"Bookshelf", "Furniture", 199},
		{"Nike Shoes", "Fashion", 150},
		{"Levi's Jeans", "Fashion", 80},
		{"Ray-Ban", "Fashion", 200},
	}
}

func skilledStaff() []skilledEmployee {
	return []skilledEmployee{
		{"Ram", 45000, "IT", []string{"Java", "SQL"}},
		{"Sita", 65000, "HR", []string{"Excel", "Communication"}},
		{"Arjun", 55000, "IT", []string{"Python", "Java"}},
		{"Priya", 72000, "Finance", []string{"Excel", "Accounting"}},
		{"Kiran", 48000, "IT", []string{"JavaScript", "React"}},
		{"Meera", 58000, "HR", []string{"Recruiting", "Excel"}},
	}
}

func placements() []placement {
	return []placement{
		{"Ram", "IT", "Bangalore", "Senior", 75000},
		{"Sita", "HR", "Mumbai", "Junior", 45000},
		{"Arjun", "IT", "Bangalore", "Junior", 55000},
		{"Priya", "Finance", "Delhi", "Senior", 72000},
		{"Kiran", "IT", "Mumbai", "Senior", 65000},
		{"Meera", "HR", "Bangalore", "Senior", 58000},
		{"Raj", "IT", "Bangalore", "Junior", 48000},
		{"Sneha", "Finance", "Mumbai", "Junior", 52000},
	}
}

package categories

import "github.com/venkatkrish78/finplanner-sub001/internal/model"

// DefaultCategories returns the built-in category keyword table. The lists
// lean on merchant names and bill words common in Indian bank alerts.
func DefaultCategories() []model.Category {
	return []model.Category{
		{Name: "Groceries", Keywords: []string{"grocery", "supermarket", "bigbasket", "dmart", "kirana", "blinkit", "zepto"}},
		{Name: "Dining", Keywords: []string{"restaurant", "swiggy", "zomato", "cafe", "food", "dominos", "pizza"}},
		{Name: "Fuel", Keywords: []string{"petrol", "fuel", "diesel", "hpcl", "bpcl", "indian oil"}},
		{Name: "Utilities", Keywords: []string{"electricity bill", "electricity", "water bill", "gas bill", "broadband", "recharge", "dth"}},
		{Name: "Rent", Keywords: []string{"rent", "landlord", "lease"}},
		{Name: "Salary", Keywords: []string{"salary", "payroll", "wages", "stipend"}},
		{Name: "Entertainment", Keywords: []string{"netflix", "hotstar", "spotify", "prime video", "movie", "bookmyshow"}},
		{Name: "Shopping", Keywords: []string{"amazon", "flipkart", "myntra", "ajio", "mall"}},
		{Name: "Health", Keywords: []string{"pharmacy", "hospital", "clinic", "apollo", "medplus", "doctor"}},
		{Name: "Travel", Keywords: []string{"irctc", "uber", "ola", "makemytrip", "airline", "flight", "metro"}},
		{Name: "Investment", Keywords: []string{"sip", "mutual fund", "zerodha", "groww", "nps", "ppf"}},
		{Name: "EMI", Keywords: []string{"emi", "loan installment", "loan repayment"}},
	}
}

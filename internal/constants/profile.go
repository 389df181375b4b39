package constants

// AgeRanges - допустимые возрастные диапазоны профиля
var AgeRanges = []string{"18-24", "25-34", "35-44", "45-54", "55-64", "65+"}

// Counties - список графств Ирландии для поля профиля
var Counties = []string{
	"Antrim", "Armagh", "Carlow", "Cavan", "Clare", "Cork", "Derry", "Donegal",
	"Down", "Dublin", "Fermanagh", "Galway", "Kerry", "Kildare", "Kilkenny",
	"Laois", "Leitrim", "Limerick", "Longford", "Louth", "Mayo", "Meath",
	"Monaghan", "Offaly", "Roscommon", "Sligo", "Tipperary", "Tyrone",
	"Waterford", "Westmeath", "Wexford", "Wicklow",
}

// InterestCategories - допустимые категории интересов
var InterestCategories = []string{
	"Sports", "Travel", "Food & Drink", "Technology", "Fashion",
	"Health & Fitness", "Entertainment", "Home & Garden", "Automotive", "Finance",
}

// Contains проверяет наличие значения в списке
func Contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

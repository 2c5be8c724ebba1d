package wordbank

// Seed returns the built-in word list, used when no word file is configured
func Seed() *StaticBank {
	return NewStaticBank([]Pair{
		{CivilianWord: "Coffee", UndercoverWord: "Tea", Category: "Food"},
		{CivilianWord: "Car", UndercoverWord: "Motorcycle", Category: "Transport"},
		{CivilianWord: "Beach", UndercoverWord: "Pool", Category: "Place"},
		{CivilianWord: "Dog", UndercoverWord: "Wolf", Category: "Animal"},
		{CivilianWord: "Sun", UndercoverWord: "Moon", Category: "Nature"},
		{CivilianWord: "Apple", UndercoverWord: "Orange", Category: "Fruit"},
		{CivilianWord: "Pen", UndercoverWord: "Pencil", Category: "Stationery"},
		{CivilianWord: "Ship", UndercoverWord: "Boat", Category: "Transport"},
		{CivilianWord: "Computer", UndercoverWord: "Laptop", Category: "Tech"},
		{CivilianWord: "School", UndercoverWord: "University", Category: "Place"},
	})
}

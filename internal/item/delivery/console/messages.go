package console

import "strings"

// Supported operator languages.
const (
	LanguageEnglish = "en"
	LanguageRussian = "ru"
)

type messages struct {
	menuAdd    string
	menuList   string
	menuDelete string
	menuUpdate string
	menuExit   string
	choose     string
	badChoice  string

	askID       string
	askName     string
	askPrice    string
	askQuantity string
	askYear     string
	askDeleteID string
	askUpdateID string
	askNewName  string
	askNewPrice string
	askNewQty   string
	askNewYear  string

	notInt    string
	notNumber string
	negative  string
	blankName string
	badYear   string

	added    string
	updated  string
	deleted  string
	exists   string
	notFound string
	empty    string
	failed   string
}

var english = messages{
	menuAdd:    "Add item",
	menuList:   "List items",
	menuDelete: "Delete item",
	menuUpdate: "Update item",
	menuExit:   "Exit",
	choose:     "Choose an action: ",
	badChoice:  "Invalid choice.",

	askID:       "Item ID: ",
	askName:     "Name: ",
	askPrice:    "Price: ",
	askQuantity: "Quantity: ",
	askYear:     "Release year: ",
	askDeleteID: "ID of the item to delete: ",
	askUpdateID: "ID of the item to update: ",
	askNewName:  "New name: ",
	askNewPrice: "New price: ",
	askNewQty:   "New quantity: ",
	askNewYear:  "New release year: ",

	notInt:    "Please enter an integer.",
	notNumber: "Please enter a number.",
	negative:  "The value must not be negative.",
	blankName: "The name must not be empty.",
	badYear:   "Please enter a valid year (from %d to %d).",

	added:    "Item added.",
	updated:  "Item updated.",
	deleted:  "Item deleted.",
	exists:   "An item with this ID already exists.",
	notFound: "Item not found.",
	empty:    "No items.",
	failed:   "Operation failed: %v",
}

var russian = messages{
	menuAdd:    "Добавить товар",
	menuList:   "Показать все",
	menuDelete: "Удалить товар",
	menuUpdate: "Обновить товар",
	menuExit:   "Выход",
	choose:     "Выберите действие: ",
	badChoice:  "Неверный выбор.",

	askID:       "ID товара: ",
	askName:     "Название: ",
	askPrice:    "Стоимость: ",
	askQuantity: "Количество: ",
	askYear:     "Год выпуска: ",
	askDeleteID: "ID товара для удаления: ",
	askUpdateID: "ID товара для обновления: ",
	askNewName:  "Новое название: ",
	askNewPrice: "Новая стоимость: ",
	askNewQty:   "Новое количество: ",
	askNewYear:  "Новый год выпуска: ",

	notInt:    "Пожалуйста, введите целое число.",
	notNumber: "Пожалуйста, введите число.",
	negative:  "Значение не может быть отрицательным.",
	blankName: "Название не может быть пустым.",
	badYear:   "Введите корректный год (от %d до %d).",

	added:    "Товар добавлен.",
	updated:  "Товар обновлён.",
	deleted:  "Товар удалён.",
	exists:   "Товар с таким ID уже существует.",
	notFound: "Товар не найден.",
	empty:    "Товаров нет.",
	failed:   "Ошибка: %v",
}

// catalog falls back to English for unknown languages.
func catalog(lang string) messages {
	if strings.EqualFold(strings.TrimSpace(lang), LanguageRussian) {
		return russian
	}
	return english
}

// IsSupportedLanguage reports whether lang has a message catalog.
func IsSupportedLanguage(lang string) bool {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case LanguageEnglish, LanguageRussian:
		return true
	}
	return false
}

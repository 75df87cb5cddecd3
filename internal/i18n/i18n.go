// Package i18n holds the display strings of the summary views.
package i18n

import (
	"strings"

	"github.com/iwvelando/earning-formula/internal/model"
)

// Message keys.
const (
	KeyAppTitle           = "app.title"
	KeyConfiguration      = "configuration.label"
	KeyUnsaved            = "configuration.unsaved"
	KeyTotalResults       = "results.total"
	KeyJobBreakdown       = "results.jobBreakdown"
	KeyNoJobs             = "results.empty"
	KeyTotalWeeklyHours   = "results.totalWeeklyHours"
	KeyTotalMonthlyHours  = "results.totalMonthlyHours"
	KeyTotalMonthlySalary = "results.totalMonthlySalary"
	KeyAverageHourlyRate  = "results.averageHourlyRate"
	KeyWeekdays           = "results.weekdays"
	KeyWeekends           = "results.weekends"
	KeyMonthlySalary      = "job.monthlySalary"
	KeyHourlyRate         = "job.hourlyRate"
	KeyWeeklyHours        = "job.weeklyHours"
	KeyMonthlyHours       = "job.monthlyHours"
	KeyHoursShort         = "unit.hours"
	KeyPerHour            = "unit.perHour"
)

// DayKey returns the key of the short name of day.
func DayKey(day model.DayOfWeek) string {
	return "day." + day.String()
}

var tables = map[string]map[string]string{
	"en": {
		KeyAppTitle:           "Salary Calculator",
		KeyConfiguration:      "Configuration",
		KeyUnsaved:            "Unsaved configuration",
		KeyTotalResults:       "Total Results",
		KeyJobBreakdown:       "Job Breakdown",
		KeyNoJobs:             "No jobs yet",
		KeyTotalWeeklyHours:   "Total Weekly Hours",
		KeyTotalMonthlyHours:  "Total Monthly Hours",
		KeyTotalMonthlySalary: "Total Monthly Salary",
		KeyAverageHourlyRate:  "Average Hourly Rate",
		KeyWeekdays:           "Weekdays",
		KeyWeekends:           "Weekends",
		KeyMonthlySalary:      "Monthly Salary",
		KeyHourlyRate:         "Hourly Rate",
		KeyWeeklyHours:        "Weekly Hours",
		KeyMonthlyHours:       "Monthly Hours",
		KeyHoursShort:         "h",
		KeyPerHour:            "/h",
		"day.MONDAY":          "Mon",
		"day.TUESDAY":         "Tue",
		"day.WEDNESDAY":       "Wed",
		"day.THURSDAY":        "Thu",
		"day.FRIDAY":          "Fri",
		"day.SATURDAY":        "Sat",
		"day.SUNDAY":          "Sun",
	},
	"ru": {
		KeyAppTitle:           "Калькулятор зарплаты",
		KeyConfiguration:      "Конфигурация",
		KeyUnsaved:            "Несохранённая конфигурация",
		KeyTotalResults:       "Общие результаты",
		KeyJobBreakdown:       "Детализация по работам",
		KeyNoJobs:             "Работы не добавлены",
		KeyTotalWeeklyHours:   "Общие часы в неделю",
		KeyTotalMonthlyHours:  "Общие часы в месяц",
		KeyTotalMonthlySalary: "Общая зарплата в месяц",
		KeyAverageHourlyRate:  "Средняя ставка в час",
		KeyWeekdays:           "Будни",
		KeyWeekends:           "Выходные",
		KeyMonthlySalary:      "Зарплата в месяц",
		KeyHourlyRate:         "Ставка в час",
		KeyWeeklyHours:        "Часов в неделю",
		KeyMonthlyHours:       "Часов в месяц",
		KeyHoursShort:         "ч",
		KeyPerHour:            "/ч",
		"day.MONDAY":          "Пн",
		"day.TUESDAY":         "Вт",
		"day.WEDNESDAY":       "Ср",
		"day.THURSDAY":        "Чт",
		"day.FRIDAY":          "Пт",
		"day.SATURDAY":        "Сб",
		"day.SUNDAY":          "Вс",
	},
	"es": {
		KeyAppTitle:           "Calculadora de Salario",
		KeyConfiguration:      "Configuración",
		KeyUnsaved:            "Configuración sin guardar",
		KeyTotalResults:       "Resultados Totales",
		KeyJobBreakdown:       "Desglose por Trabajos",
		KeyNoJobs:             "No hay trabajos",
		KeyTotalWeeklyHours:   "Horas Semanales Totales",
		KeyTotalMonthlyHours:  "Horas Mensuales Totales",
		KeyTotalMonthlySalary: "Salario Mensual Total",
		KeyAverageHourlyRate:  "Tarifa Promedio por Hora",
		KeyWeekdays:           "Días Laborables",
		KeyWeekends:           "Fines de Semana",
		KeyMonthlySalary:      "Salario Mensual",
		KeyHourlyRate:         "Tarifa por Hora",
		KeyWeeklyHours:        "Horas Semanales",
		KeyMonthlyHours:       "Horas Mensuales",
		KeyHoursShort:         "h",
		KeyPerHour:            "/h",
		"day.MONDAY":          "Lun",
		"day.TUESDAY":         "Mar",
		"day.WEDNESDAY":       "Mié",
		"day.THURSDAY":        "Jue",
		"day.FRIDAY":          "Vie",
		"day.SATURDAY":        "Sáb",
		"day.SUNDAY":          "Dom",
	},
	"de": {
		KeyAppTitle:           "Gehaltsrechner",
		KeyConfiguration:      "Konfiguration",
		KeyUnsaved:            "Nicht gespeicherte Konfiguration",
		KeyTotalResults:       "Gesamtergebnisse",
		KeyJobBreakdown:       "Aufschlüsselung nach Jobs",
		KeyNoJobs:             "Keine Jobs",
		KeyTotalWeeklyHours:   "Gesamte Wochenstunden",
		KeyTotalMonthlyHours:  "Gesamte Monatsstunden",
		KeyTotalMonthlySalary: "Gesamtes Monatsgehalt",
		KeyAverageHourlyRate:  "Durchschnittlicher Stundenlohn",
		KeyWeekdays:           "Wochentage",
		KeyWeekends:           "Wochenenden",
		KeyMonthlySalary:      "Monatsgehalt",
		KeyHourlyRate:         "Stundenlohn",
		KeyWeeklyHours:        "Wochenstunden",
		KeyMonthlyHours:       "Monatsstunden",
		KeyHoursShort:         "Std",
		KeyPerHour:            "/Std",
		"day.MONDAY":          "Mo",
		"day.TUESDAY":         "Di",
		"day.WEDNESDAY":       "Mi",
		"day.THURSDAY":        "Do",
		"day.FRIDAY":          "Fr",
		"day.SATURDAY":        "Sa",
		"day.SUNDAY":          "So",
	},
	"fr": {
		KeyAppTitle:           "Calculateur de Salaire",
		KeyConfiguration:      "Configuration",
		KeyUnsaved:            "Configuration non enregistrée",
		KeyTotalResults:       "Résultats Totaux",
		KeyJobBreakdown:       "Répartition par Emplois",
		KeyNoJobs:             "Aucun emploi",
		KeyTotalWeeklyHours:   "Heures Hebdomadaires Totales",
		KeyTotalMonthlyHours:  "Heures Mensuelles Totales",
		KeyTotalMonthlySalary: "Salaire Mensuel Total",
		KeyAverageHourlyRate:  "Taux Horaire Moyen",
		KeyWeekdays:           "Jours de Semaine",
		KeyWeekends:           "Week-ends",
		KeyMonthlySalary:      "Salaire Mensuel",
		KeyHourlyRate:         "Taux Horaire",
		KeyWeeklyHours:        "Heures Hebdomadaires",
		KeyMonthlyHours:       "Heures Mensuelles",
		KeyHoursShort:         "h",
		KeyPerHour:            "/h",
		"day.MONDAY":          "Lun",
		"day.TUESDAY":         "Mar",
		"day.WEDNESDAY":       "Mer",
		"day.THURSDAY":        "Jeu",
		"day.FRIDAY":          "Ven",
		"day.SATURDAY":        "Sam",
		"day.SUNDAY":          "Dim",
	},
	"kk": {
		KeyAppTitle:           "Жалақы калькуляторы",
		KeyConfiguration:      "Конфигурация",
		KeyUnsaved:            "Сақталмаған конфигурация",
		KeyTotalResults:       "Жалпы нәтижелер",
		KeyJobBreakdown:       "Жұмыстар бойынша детализация",
		KeyNoJobs:             "Жұмыс жоқ",
		KeyTotalWeeklyHours:   "Жалпы апталық сағаттар",
		KeyTotalMonthlyHours:  "Жалпы айлық сағаттар",
		KeyTotalMonthlySalary: "Жалпы айлық жалақы",
		KeyAverageHourlyRate:  "Орташа сағаттық ставка",
		KeyWeekdays:           "Жұмыс күндері",
		KeyWeekends:           "Демалыс күндері",
		KeyMonthlySalary:      "Айлық жалақы",
		KeyHourlyRate:         "Сағаттық ставка",
		KeyWeeklyHours:        "Апталық сағаттар",
		KeyMonthlyHours:       "Айлық сағаттар",
		KeyHoursShort:         "сағ",
		KeyPerHour:            "/сағ",
		"day.MONDAY":          "Дс",
		"day.TUESDAY":         "Сс",
		"day.WEDNESDAY":       "Ср",
		"day.THURSDAY":        "Бс",
		"day.FRIDAY":          "Жм",
		"day.SATURDAY":        "Сн",
		"day.SUNDAY":          "Жс",
	},
}

const fallbackLanguage = "en"

// Lookup returns the string for key in the language with languageCode.
// Languages without a table and keys missing from a table fall back to
// English; unknown keys are returned unchanged.
func Lookup(key, languageCode string) string {
	if table, ok := tables[strings.ToLower(strings.TrimSpace(languageCode))]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[fallbackLanguage][key]; ok {
		return s
	}
	return key
}

// Translator binds Lookup to one language.
type Translator struct {
	languageCode string
}

// For returns a Translator for lang.
func For(lang model.Language) Translator {
	return Translator{languageCode: lang.Code}
}

// T looks key up in the bound language.
func (t Translator) T(key string) string {
	return Lookup(key, t.languageCode)
}

// Day returns the short name of day in the bound language.
func (t Translator) Day(day model.DayOfWeek) string {
	return Lookup(DayKey(day), t.languageCode)
}

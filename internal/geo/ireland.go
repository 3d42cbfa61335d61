package geo

// irelandAdjacency lists the land borders between the 32 counties of Ireland.
// Each border only needs to appear once; New symmetrizes the table.
var irelandAdjacency = map[string][]string{
	"Antrim":    {"Derry", "Tyrone", "Armagh", "Down"},
	"Armagh":    {"Down", "Tyrone", "Monaghan", "Louth"},
	"Carlow":    {"Wicklow", "Wexford", "Kilkenny", "Laois", "Kildare"},
	"Cavan":     {"Leitrim", "Fermanagh", "Monaghan", "Meath", "Westmeath", "Longford"},
	"Clare":     {"Galway", "Tipperary", "Limerick"},
	"Cork":      {"Kerry", "Limerick", "Tipperary", "Waterford"},
	"Derry":     {"Donegal", "Tyrone"},
	"Donegal":   {"Tyrone", "Fermanagh", "Leitrim"},
	"Down":      {"Louth"},
	"Dublin":    {"Meath", "Kildare", "Wicklow"},
	"Fermanagh": {"Tyrone", "Monaghan", "Leitrim"},
	"Galway":    {"Mayo", "Roscommon", "Offaly", "Tipperary", "Clare"},
	"Kerry":     {"Limerick"},
	"Kildare":   {"Meath", "Wicklow", "Laois", "Offaly"},
	"Kilkenny":  {"Wexford", "Waterford", "Tipperary", "Laois"},
	"Laois":     {"Tipperary", "Offaly"},
	"Leitrim":   {"Longford", "Roscommon", "Sligo"},
	"Limerick":  {"Tipperary"},
	"Longford":  {"Westmeath", "Roscommon"},
	"Louth":     {"Monaghan", "Meath"},
	"Mayo":      {"Sligo", "Roscommon", "Galway"},
	"Meath":     {"Monaghan", "Westmeath", "Offaly"},
	"Monaghan":  {"Tyrone"},
	"Offaly":    {"Roscommon", "Westmeath", "Tipperary"},
	"Roscommon": {"Sligo", "Westmeath"},
	"Tipperary": {"Waterford"},
	"Waterford": {"Wexford"},
	"Wexford":   {"Wicklow"},
}

// Ireland returns the built-in adjacency table for Irish counties.
func Ireland() *Table {
	return New(irelandAdjacency)
}

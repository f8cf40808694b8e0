package seeders

import (
	"github.com/aarondl/null/v8"

	"camrental/internal/entities"
	"camrental/pkg/constants"
)

// Fixture data for the web store. Passwords here are plaintext seeds; the
// seeder hashes them before insert.

var branchData = []entities.Branch{
	{Code: "DT", Name: "Downtown"},
	{Code: "AP", Name: "Airport"},
	{Code: "WS", Name: "Westside"},
}

var categoryData = []entities.Category{
	{Code: "CAM", Name: "Cameras"},
	{Code: "DSLR", Name: "DSLR Cameras", ParentCode: null.StringFrom("CAM")},
	{Code: "MIRR", Name: "Mirrorless Cameras", ParentCode: null.StringFrom("CAM")},
	{Code: "LENS", Name: "Lenses"},
	{Code: "LIGHT", Name: "Lighting"},
	{Code: "AUDIO", Name: "Audio"},
}

type staffSeed struct {
	entity   entities.Staff
	password string
}

var staffData = []staffSeed{
	{
		entity: entities.Staff{
			FullName:   "Maya Ortiz",
			Email:      "maya.ortiz@rental.example",
			Role:       constants.RoleManager,
			HireDate:   null.StringFrom("2019-04-15"),
			BranchCode: null.StringFrom("DT"),
		},
		password: "manager-pass",
	},
	{
		entity: entities.Staff{
			FullName:   "Devon Park",
			Email:      "devon.park@rental.example",
			Role:       constants.RoleClerk,
			HireDate:   null.StringFrom("2021-09-01"),
			BranchCode: null.StringFrom("DT"),
		},
		password: "clerk-pass",
	},
	{
		entity: entities.Staff{
			FullName:   "Ines Fally",
			Email:      "ines.fally@rental.example",
			Role:       constants.RoleTech,
			HireDate:   null.StringFrom("2020-02-20"),
			BranchCode: null.StringFrom("AP"),
		},
		password: "tech-pass",
	},
}

type equipmentSeed struct {
	entity entities.Equipment
	copies []entities.EquipmentCopy
}

var equipmentData = []equipmentSeed{
	{
		entity: entities.Equipment{
			Name: "Full-Frame DSLR Kit", Brand: "Canon", Model: "EOS 5D IV",
			DailyRate: 85, Deposit: 500,
			Status: constants.EquipmentStatusActive, CategoryCode: null.StringFrom("DSLR"),
		},
		copies: []entities.EquipmentCopy{
			{EquipCode: "DSLR-0001", CopyNo: 1, BranchCode: "DT", Condition: null.StringFrom("Good"), PurchaseDate: null.StringFrom("2022-03-10"), SerialNumber: "CN5D4-88121"},
			{EquipCode: "DSLR-0002", CopyNo: 2, BranchCode: "AP", Condition: null.StringFrom("Fair"), PurchaseDate: null.StringFrom("2021-07-22"), SerialNumber: "CN5D4-55412"},
		},
	},
	{
		entity: entities.Equipment{
			Name: "Mirrorless Body", Brand: "Sony", Model: "A7 IV",
			DailyRate: 95, Deposit: 600,
			Status: constants.EquipmentStatusActive, CategoryCode: null.StringFrom("MIRR"),
		},
		copies: []entities.EquipmentCopy{
			{EquipCode: "MIRR-0001", CopyNo: 1, BranchCode: "DT", Condition: null.StringFrom("Good"), PurchaseDate: null.StringFrom("2023-01-05"), SerialNumber: "SNA74-10332"},
		},
	},
	{
		entity: entities.Equipment{
			Name: "Cine Prime Lens", Brand: "Zeiss", Model: "CP.3 50mm",
			DailyRate: 60, Deposit: 400,
			Status: constants.EquipmentStatusActive, CategoryCode: null.StringFrom("LENS"),
		},
		copies: []entities.EquipmentCopy{
			{EquipCode: "LENS-0001", CopyNo: 1, BranchCode: "WS", Condition: null.StringFrom("Good"), PurchaseDate: null.StringFrom("2022-11-30"), SerialNumber: "ZSCP3-00917"},
		},
	},
	{
		entity: entities.Equipment{
			Name: "LED Panel Pair", Brand: "Aputure", Model: "MC Pro",
			DailyRate: 30, Deposit: 150,
			Status: constants.EquipmentStatusMaintenance, CategoryCode: null.StringFrom("LIGHT"),
		},
		copies: []entities.EquipmentCopy{
			{EquipCode: "LED-0001", CopyNo: 1, BranchCode: "AP", Condition: null.StringFrom("Worn"), PurchaseDate: null.StringFrom("2020-05-18"), SerialNumber: "APMC-33208"},
		},
	},
	{
		entity: entities.Equipment{
			Name: "Shotgun Microphone", Brand: "Rode", Model: "NTG5",
			DailyRate: 20, Deposit: 100,
			Status: constants.EquipmentStatusActive, CategoryCode: null.StringFrom("AUDIO"),
		},
		copies: []entities.EquipmentCopy{
			{EquipCode: "MIC-0001", CopyNo: 1, BranchCode: "DT", Condition: null.StringFrom("Good"), PurchaseDate: null.StringFrom("2023-06-02"), SerialNumber: "RDNT5-71660"},
		},
	},
}

var demoCustomer = struct {
	entity   entities.Customer
	password string
}{
	entity: entities.Customer{
		FullName: "Ann Chu",
		Email:    "ann@example.com",
		Phone:    null.StringFrom("555-0101"),
		Status:   constants.CustomerStatusActive,
	},
	password: "customer-pass",
}

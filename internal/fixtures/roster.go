package fixtures

import (
	"strings"
	"sync"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/employee"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/leave"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// PasswordFor returns the seeded credential for a roster entry: the
// employee code, lowercased.
func PasswordFor(employeeID string) string {
	return strings.ToLower(employeeID)
}

var (
	hashOnce sync.Once
	hashes   map[string]string
)

func passwordHash(employeeID string) string {
	hashOnce.Do(func() {
		hashes = make(map[string]string, len(rosterCodes))
		for _, code := range rosterCodes {
			h, err := bcrypt.GenerateFromPassword([]byte(PasswordFor(code)), bcrypt.DefaultCost)
			if err != nil {
				panic("failed to hash seed password: " + err.Error())
			}
			hashes[code] = string(h)
		}
	})
	return hashes[employeeID]
}

var rosterCodes = []string{"EMP-101", "EMP-202", "EMP-303", "EMP-404", "EMP-505", "EMP-606"}

func structure(basic, hra, special, pf, tds, proTax int64) *employee.SalaryStructure {
	return &employee.SalaryStructure{
		Basic:            decimal.NewFromInt(basic),
		HRA:              decimal.NewFromInt(hra),
		SpecialAllowance: decimal.NewFromInt(special),
		PF:               decimal.NewFromInt(pf),
		TDS:              decimal.NewFromInt(tds),
		ProfessionalTax:  decimal.NewFromInt(proTax),
	}
}

// DefaultRoster returns the seeded employee directory.
func DefaultRoster() []employee.Employee {
	return []employee.Employee{
		{
			ID:              "1",
			EmployeeID:      "EMP-101",
			FullName:        "Priya Verma",
			Email:           "priya.verma@aligna.io",
			PasswordHash:    passwordHash("EMP-101"),
			Role:            employee.RoleAdmin,
			Position:        "HR Director",
			Department:      "People Operations",
			JoinDate:        "2021-11-05",
			Salary:          decimal.NewFromInt(2400000),
			Phone:           "+91 99887 76655",
			Address:         "Vasant Vihar, New Delhi",
			AvatarURL:       "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=200",
			SalaryStructure: structure(100000, 40000, 60000, 12000, 25000, 200),
			ManagerName:     "Sidharth Shukla",
		},
		{
			ID:              "2",
			EmployeeID:      "EMP-202",
			FullName:        "Rahul Sharma",
			Email:           "rahul.sharma@aligna.io",
			PasswordHash:    passwordHash("EMP-202"),
			Role:            employee.RoleEmployee,
			Position:        "Lead Engineer",
			Department:      "Software Engineering",
			JoinDate:        "2022-08-12",
			Salary:          decimal.NewFromInt(3200000),
			Phone:           "+91 98765 43210",
			Address:         "Indiranagar, Bangalore",
			AvatarURL:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&q=80&w=200",
			SalaryStructure: structure(133333, 53333, 80000, 16000, 35000, 200),
			ManagerName:     "Sidharth Shukla",
		},
		{
			ID:              "3",
			EmployeeID:      "EMP-303",
			FullName:        "Amit Patel",
			Email:           "amit.patel@aligna.io",
			PasswordHash:    passwordHash("EMP-303"),
			Role:            employee.RoleEmployee,
			Position:        "Senior UX Designer",
			Department:      "Product Design",
			JoinDate:        "2023-03-20",
			Salary:          decimal.NewFromInt(1800000),
			Phone:           "+91 91234 56789",
			Address:         "Bandra West, Mumbai",
			AvatarURL:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&q=80&w=200",
			SalaryStructure: structure(75000, 30000, 45000, 9000, 12000, 200),
			ManagerName:     "Sidharth Shukla",
		},
		{
			ID:              "4",
			EmployeeID:      "EMP-404",
			FullName:        "Neha Gupta",
			Email:           "neha.gupta@aligna.io",
			PasswordHash:    passwordHash("EMP-404"),
			Role:            employee.RoleEmployee,
			Position:        "Senior Content Strategist",
			Department:      "Marketing",
			JoinDate:        "2023-06-15",
			Salary:          decimal.NewFromInt(1200000),
			Phone:           "+91 92233 44556",
			Address:         "Saket, New Delhi",
			AvatarURL:       "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&q=80&w=200",
			SalaryStructure: structure(50000, 20000, 30000, 6000, 8000, 200),
			ManagerName:     "Sidharth Shukla",
		},
		{
			ID:              "5",
			EmployeeID:      "EMP-505",
			FullName:        "Suresh Kumar",
			Email:           "suresh.kumar@aligna.io",
			PasswordHash:    passwordHash("EMP-505"),
			Role:            employee.RoleEmployee,
			Position:        "Infrastructure Lead",
			Department:      "IT Operations",
			JoinDate:        "2022-01-10",
			Salary:          decimal.NewFromInt(2800000),
			Phone:           "+91 93344 55667",
			Address:         "HSR Layout, Bangalore",
			AvatarURL:       "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&q=80&w=200",
			SalaryStructure: structure(116666, 46666, 70000, 14000, 28000, 200),
			ManagerName:     "Sidharth Shukla",
		},
		{
			ID:              "6",
			EmployeeID:      "EMP-606",
			FullName:        "Anjali Mehta",
			Email:           "anjali.mehta@aligna.io",
			PasswordHash:    passwordHash("EMP-606"),
			Role:            employee.RoleEmployee,
			Position:        "Product Manager",
			Department:      "Product",
			JoinDate:        "2023-09-01",
			Salary:          decimal.NewFromInt(2200000),
			Phone:           "+91 94455 66778",
			Address:         "Powai, Mumbai",
			AvatarURL:       "https://images.unsplash.com/photo-1580489944761-15a19d654956?auto=format&fit=crop&q=80&w=200",
			SalaryStructure: structure(91666, 36666, 55000, 11000, 22000, 200),
			ManagerName:     "Sidharth Shukla",
		},
	}
}

// RosterEmployeeIDs returns the employee codes of the default roster, in
// roster order.
func RosterEmployeeIDs() []string {
	ids := make([]string, len(rosterCodes))
	copy(ids, rosterCodes)
	return ids
}

// DefaultLeaves returns the seeded leave requests.
func DefaultLeaves() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{
			ID:           "l1",
			EmployeeID:   "EMP-202",
			EmployeeName: "Rahul Sharma",
			Type:         leave.TypeSick,
			StartDate:    "2024-05-20",
			EndDate:      "2024-05-21",
			Reason:       "Suffering from seasonal flu",
			Status:       leave.StatusPending,
			AppliedDate:  "2024-05-18",
		},
	}
}

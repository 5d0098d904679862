package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/attendance"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/dashboard"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/leave"
	"github.com/Snowwden-gpu/HRMS-ALIGNA/internal/domain/payroll"
	"golang.org/x/sync/errgroup"
)

// workdaysPerMonth approximates the working days in a month for the
// attendance score.
const workdaysPerMonth = 22

type DashboardServiceImpl struct {
	attendanceSvc attendance.AttendanceService
	leaveSvc      leave.LeaveService
	payrollSvc    payroll.PayrollService

	now func() time.Time
}

func NewDashboardService(
	attendanceSvc attendance.AttendanceService,
	leaveSvc leave.LeaveService,
	payrollSvc payroll.PayrollService,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		attendanceSvc: attendanceSvc,
		leaveSvc:      leaveSvc,
		payrollSvc:    payrollSvc,
		now:           time.Now,
	}
}

// Summary implements dashboard.DashboardService. The three underlying
// services are queried concurrently.
func (d *DashboardServiceImpl) Summary(ctx context.Context, employeeID string) (dashboard.Summary, error) {
	var (
		views   []attendance.DayView
		balance leave.BalanceResponse
		slip    payroll.Payslip
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		views, err = d.attendanceSvc.ListByEmployee(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		balance, err = d.leaveSvc.Balance(gCtx, employeeID)
		return err
	})

	g.Go(func() error {
		var err error
		slip, err = d.payrollSvc.Payslip(gCtx, employeeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.Summary{}, err
	}

	today := d.now().Format("2006-01-02")
	summary := dashboard.Summary{
		AttendanceScore: attendanceScore(views),
		LeaveBalance:    balance.Balance,
		PendingLeaves:   balance.Pending,
		NextPayout:      slip.MonthlyGross,
	}
	for i := range views {
		if views[i].Date == today {
			summary.Today = &views[i]
			break
		}
	}

	return summary, nil
}

// attendanceScore maps the recent Present-day count to a 0-100 figure.
func attendanceScore(views []attendance.DayView) int {
	present := 0
	for _, v := range views {
		if v.Status == attendance.StatusPresent {
			present++
		}
	}

	score := int(math.Round(float64(present)/workdaysPerMonth*100)) + 75
	if score > 100 {
		score = 100
	}
	return score
}

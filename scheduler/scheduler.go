package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"projecthub/model"
	"projecthub/services"
)

// Start schedules the recurring overdue-task scan. Delivery of
// reminders is out of scope here; the scan just logs a summary so
// operators can see projects slipping past their due dates.
func Start(db *gorm.DB) {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 */15 * * * *", func() {
		ScanOverdueTasks(db)
	})
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started")
}

func ScanOverdueTasks(db *gorm.DB) {
	var overdue []model.Tasks
	err := db.Where("due_date IS NOT NULL AND due_date < ? AND status <> ?",
		time.Now(), string(services.TaskStatusDone)).Find(&overdue).Error
	if err != nil {
		log.Printf("Overdue scan failed: %v", err)
		return
	}
	if len(overdue) == 0 {
		return
	}

	byProject := make(map[int]int)
	for _, t := range overdue {
		byProject[t.ProjectID]++
	}
	for projectID, count := range byProject {
		log.Printf("Project %d has %d overdue task(s)", projectID, count)
	}
}

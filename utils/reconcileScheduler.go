package utils

import (
	"log"
	"time"

	"learnhub/database"
	courseModels "learnhub/models/course"

	"github.com/robfig/cron/v3"
)

// logReconcile logs reconciliation events with timestamp
func logReconcile(message string) {
	log.Printf("[RECONCILE %s] %s", time.Now().Format(time.RFC3339), message)
}

// InitializeReconcileScheduler starts the hourly enrolled-count sweep.
// Enrollment writes bump the counter best-effort without a transaction, so
// under concurrent requests it can drift from the true row count; the sweep
// recomputes it from the Enrollment table.
func InitializeReconcileScheduler() {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		ReconcileEnrollmentCounts()
	})

	c.Start()
	log.Println("[RECONCILE] Enrollment count reconciliation scheduler started - runs hourly")
}

// ReconcileEnrollmentCounts recomputes every course's enrolled_count from
// live enrollment rows and repairs any drift
func ReconcileEnrollmentCounts() {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.Where("is_deleted = false").Find(&courses).Error; err != nil {
		logReconcile("Error fetching courses: " + err.Error())
		return
	}

	repaired := 0
	for _, course := range courses {
		var actual int64
		if err := db.Model(&courseModels.Enrollment{}).Where("course_id = ?", course.ID).Count(&actual).Error; err != nil {
			logReconcile("Error counting enrollments for course " + course.Title + ": " + err.Error())
			continue
		}

		if uint(actual) == course.EnrolledCount {
			continue
		}

		if err := db.Model(&courseModels.Course{}).Where("id = ?", course.ID).
			UpdateColumn("enrolled_count", actual).Error; err != nil {
			logReconcile("Error repairing count for course " + course.Title + ": " + err.Error())
			continue
		}
		log.Printf("[RECONCILE] Course %d enrolled_count drifted (%d -> %d)", course.ID, course.EnrolledCount, actual)
		repaired++
	}

	if repaired > 0 {
		log.Printf("[RECONCILE] Sweep finished, repaired %d course counters", repaired)
	}
}

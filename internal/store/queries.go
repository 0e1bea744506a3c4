package store

// User progress queries
const (
	queryGetProgress = `
		SELECT user_id, user_name, user_image_src, active_course_id, hearts, points
		FROM user_progress WHERE user_id = ?`

	queryUpsertProgress = `
		INSERT INTO user_progress (user_id, user_name, user_image_src, active_course_id, hearts, points)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			user_name = EXCLUDED.user_name,
			user_image_src = EXCLUDED.user_image_src,
			active_course_id = EXCLUDED.active_course_id`

	queryUpdateScore = `
		UPDATE user_progress SET hearts = ?, points = ? WHERE user_id = ?`
)

// Lesson progress queries
const (
	queryIsLessonCompleted = `
		SELECT COUNT(*) FROM lesson_progress
		WHERE user_id = ? AND lesson_id = ? AND completed`

	queryMarkLessonCompleted = `
		INSERT INTO lesson_progress (user_id, lesson_id, completed, completed_at)
		VALUES (?, ?, true, now())
		ON CONFLICT (user_id, lesson_id) DO UPDATE SET
			completed = true,
			completed_at = now()`

	queryCompletedLessons = `
		SELECT lesson_id FROM lesson_progress
		WHERE user_id = ? AND completed
		ORDER BY lesson_id`
)

// Content queries
const (
	queryCountCourseLessons = `
		SELECT COUNT(*)
		FROM lessons l
		JOIN chapters c ON c.id = l.chapter_id
		JOIN units u ON u.id = c.unit_id
		WHERE u.course_id = ?`
)

// Admin queries
const (
	queryAdminExists = `SELECT COUNT(*) FROM admins WHERE user_id = ?`

	queryGrantAdmin = `
		INSERT INTO admins (user_id, created_at) VALUES (?, now())
		ON CONFLICT (user_id) DO NOTHING`

	queryRevokeAdmin = `DELETE FROM admins WHERE user_id = ?`
)

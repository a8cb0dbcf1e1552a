package domain

// PlatformStats aggregates admin dashboard counters.
type PlatformStats struct {
	TotalUsers       int64   `json:"totalUsers"`
	TotalCourses     int64   `json:"totalCourses"`
	TotalEnrollments int64   `json:"totalEnrollments"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

// PlatformSummary splits the user base by role.
type PlatformSummary struct {
	TotalStudents int64   `json:"totalStudents"`
	TotalTeachers int64   `json:"totalTeachers"`
	TotalCourses  int64   `json:"totalCourses"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

package responses

type DoctorDashboardStats struct {
	TodayAppointments int `json:"todayAppointments"`
	UpcomingTotal     int `json:"upcomingTotal"`
	WaitingListCount  int `json:"waitingListCount"`
	CompletedTotal    int `json:"completedTotal"`
}

type DoctorDashboard struct {
	Doctor      Doctor               `json:"doctor"`
	Today       []Appointment        `json:"today"`
	Upcoming    []Appointment        `json:"upcoming"`
	WaitingList []Appointment        `json:"waitingList"`
	Stats       DoctorDashboardStats `json:"stats"`
}

type PatientDashboard struct {
	Patient   Patient       `json:"patient"`
	Today     []Appointment `json:"today"`
	Upcoming  []Appointment `json:"upcoming"`
	Completed []Appointment `json:"completed"`
}

package backend_dto

type Doctor struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Speciality string  `json:"speciality"`
	HealthPlan string  `json:"healthPlan"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
}

type Patient struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	HealthPlan  string `json:"healthPlan"`
}

type RegisterDoctor struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Speciality string `json:"speciality"`
	HealthPlan string `json:"healthPlan"`
}

type RegisterPatient struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DateOfBirth string `json:"dateOfBirth"`
	HealthPlan  string `json:"healthPlan"`
}

type UpdateDoctor struct {
	Name       string `json:"name,omitempty"`
	Speciality string `json:"speciality,omitempty"`
	HealthPlan string `json:"healthPlan,omitempty"`
}

type UpdatePatient struct {
	Name        string `json:"name,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	HealthPlan  string `json:"healthPlan,omitempty"`
}

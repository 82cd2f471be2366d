package requests

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterDoctor struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,password"`
	Speciality string `json:"speciality" validate:"required"`
	HealthPlan string `json:"healthPlan" validate:"required"`
}

type RegisterPatient struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,password"`
	DateOfBirth string `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	HealthPlan  string `json:"healthPlan"`
}

package responses

type Doctor struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email,omitempty"`
	Speciality     string  `json:"speciality"`
	HealthPlan     string  `json:"healthPlan"`
	Rating         float64 `json:"rating"`
	Reviews        int     `json:"reviews"`
	ProfilePicture string  `json:"profilePicture,omitempty"`
}

type Patient struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Age            int    `json:"age,omitempty"`
	HealthPlan     string `json:"healthPlan,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

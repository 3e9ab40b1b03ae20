package customer

type CreateCustomerRequest struct {
	FirstName string  `json:"firstName" binding:"required,max=100"`
	LastName  string  `json:"lastName" binding:"required,max=100"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone" binding:"required,max=40"`
	Address   string  `json:"address"`
	IDNumber  *string `json:"idNumber" binding:"omitempty,max=64"`
	Notes     string  `json:"notes"`
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"lastName" binding:"omitempty,min=1,max=100"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,min=1,max=40"`
	Address   *string `json:"address"`
	IDNumber  *string `json:"idNumber" binding:"omitempty,max=64"`
	Notes     *string `json:"notes"`
}

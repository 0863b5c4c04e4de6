package transport

type RegisterUserRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Description string `json:"description"`
}

type RegisterMetizRequest struct {
	Name               string `json:"name"`
	ContactPersonName  string `json:"contact_person_name"`
	RegistrationNumber int64  `json:"registration_number"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	Address            string `json:"address"`
	Description        string `json:"description"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type AddBasketItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  uint `json:"quantity"`
}

type UpdateBasketItemRequest struct {
	Quantity uint `json:"quantity"`
}

type CreateOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
	Description     string `json:"description"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

type UpdateCompletionTimeRequest struct {
	CompletionTime string `json:"completion_time"`
}

type CreateReviewRequest struct {
	OrderID     uint   `json:"order_id"`
	Rating      int    `json:"rating"`
	ShortReview string `json:"short_review"`
	Description string `json:"description"`
}

type UpdateReviewRequest struct {
	Rating      int    `json:"rating"`
	ShortReview string `json:"short_review"`
	Description string `json:"description"`
}

// PatchMetizRequest covers the editable profile fields. Credentials are
// changed through the auth flow, never here.
type PatchMetizRequest struct {
	Name              *string `json:"name"`
	ContactPersonName *string `json:"contact_person_name"`
	Phone             *string `json:"phone"`
	Address           *string `json:"address"`
	Description       *string `json:"description"`
}

type CreateProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

type PatchProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
}

package types

type CreateUserRequestBody struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// UpdateUserRequestBody is a merge-patch: nil fields are left untouched.
type UpdateUserRequestBody struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type CreateItemRequestBody struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *uint  `json:"requestId"`
}

type UpdateItemRequestBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateBookingRequestBody struct {
	ItemID uint   `json:"itemId" binding:"required"`
	Start  string `json:"start" binding:"required,bookabledate"`
	End    string `json:"end" binding:"required,bookabledate,gtdate=Start"`
}

type CreateItemRequestBoardBody struct {
	Description string `json:"description" binding:"required"`
}

type CreateCommentRequestBody struct {
	// Emptiness is a business rule, not a binding rule: blank text must
	// surface as a comment-not-allowed failure.
	Text string `json:"text"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

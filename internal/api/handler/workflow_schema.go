package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type bookAppointmentRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Time string `json:"time" validate:"required,datetime=15:04"`
}

type sendProposalRequest struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	File   string  `json:"proposal_file" validate:"required"`
}

type revisionRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type recordPaymentRequest struct {
	Amount        float64 `json:"amount" validate:"gte=0"`
	Gateway       string  `json:"gateway" validate:"required,oneof=Stripe Paystack"`
	TransactionID string  `json:"transaction_id" validate:"required"`
}

type shareConceptRequest struct {
	Files []string `json:"concept_design_file"`
	Link  string   `json:"concept_canva_link"`
}

type siteUpdateRequest struct {
	Title              string   `json:"update_title" validate:"required"`
	Notes              string   `json:"update_notes"`
	ProgressImages     []string `json:"progress_images"`
	ProgressPercentage int      `json:"progress_percentage" validate:"gte=0,lte=100"`
}

type setAvailabilityRequest struct {
	Records []availabilityRecordRequest `json:"records" validate:"required,dive"`
}

type availabilityRecordRequest struct {
	Date  string   `json:"date" validate:"required,datetime=2006-01-02"`
	Slots []string `json:"slots"`
}

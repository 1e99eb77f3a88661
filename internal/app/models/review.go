package models

type Review struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	DoctorID    string `json:"doctorId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	CreatedAt   string `json:"createdAt"`
}

// AggregateRating returns the mean rating and the number of reviews of
// doctorID. The mean is 0 when there are none.
func AggregateRating(reviews []Review, doctorID string) (float64, int) {
	total, count := 0, 0
	for _, review := range reviews {
		if review.DoctorID == doctorID {
			total += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return float64(total) / float64(count), count
}

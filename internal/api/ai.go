package api

import (
	"context"
	"net/http"
)

// TextNutrition asks the AI endpoint to estimate calories and protein for a
// free-form food description. A response with IsValidEntry=false means the
// model could not read the entry as food; it is not a transport failure.
func (c *Client) TextNutrition(ctx context.Context, auth Auth, foodEntry string) (NutritionEstimate, error) {
	var estimate NutritionEstimate
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/ai/nutritiondata",
		auth:   &auth,
		header: map[string]string{"Food-Entry": foodEntry},
		op:     "retrieving nutrition data",
		shape:  errJSON,
	}, &estimate)
	return estimate, err
}

// ImageNutrition estimates nutrition from a base64-encoded meal photo. On a
// valid entry the response also names the food it recognized.
func (c *Client) ImageNutrition(ctx context.Context, auth Auth, imageBase64 string) (NutritionEstimate, error) {
	var estimate NutritionEstimate
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/ai/nutritiondata/image",
		auth:   &auth,
		body:   map[string]string{"image": imageBase64},
		op:     "retrieving image nutrition data",
		shape:  errJSON,
	}, &estimate)
	return estimate, err
}

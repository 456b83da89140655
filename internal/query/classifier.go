package query

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"go.uber.org/zap"

	"aiss/internal/backend"
	"aiss/internal/catalog"
	"aiss/internal/logging"
)

// Classification is the structured result of the category detection call.
type Classification struct {
	Category       string            `json:"category" jsonschema_description:"The id of the best matching category."`
	Title          string            `json:"title" jsonschema_description:"The canonical title of the show, movie or game, formatted as branded by the studio."`
	Description    string            `json:"description" jsonschema_description:"A brief reason this category was chosen, under 30 characters."`
	AdditionalInfo map[string]string `json:"additional_info" jsonschema_description:"Supplementary facts keyed by label that help identify the work."`
}

// Result pairs the resolved category descriptor with the classification
// payload.
type Result struct {
	Descriptor     catalog.Descriptor
	Title          string
	Description    string
	AdditionalInfo map[string]string
}

var (
	classSchemaOnce sync.Once
	classSchema     map[string]any
)

// ClassificationSchema returns the JSON schema the classifier constrains
// output to. Generated once from the Classification struct, then patched
// with the category id enum and strict-mode requirements.
func ClassificationSchema() map[string]any {
	classSchemaOnce.Do(func() {
		reflector := &jsonschema.Reflector{
			DoNotReference:            true,
			AllowAdditionalProperties: false,
		}
		reflected := reflector.Reflect(&Classification{})

		data, err := json.Marshal(reflected)
		if err != nil {
			panic(fmt.Sprintf("reflecting classification schema: %v", err))
		}
		var schema map[string]any
		if err := json.Unmarshal(data, &schema); err != nil {
			panic(fmt.Sprintf("decoding classification schema: %v", err))
		}

		delete(schema, "$schema")
		delete(schema, "$id")

		props, _ := schema["properties"].(map[string]any)
		if category, ok := props["category"].(map[string]any); ok {
			ids := catalog.IDs()
			enum := make([]any, len(ids))
			for i, id := range ids {
				enum[i] = id
			}
			category["enum"] = enum
		}
		// Strict structured output wants every property required and the
		// info bag closed over string values.
		required := make([]any, 0, len(props))
		for _, name := range []string{"category", "title", "description", "additional_info"} {
			if _, ok := props[name]; ok {
				required = append(required, name)
			}
		}
		schema["required"] = required
		schema["additionalProperties"] = false

		classSchema = schema
	})
	return classSchema
}

// Classifier maps free-text input to a registered category.
type Classifier struct {
	client backend.Client
}

// NewClassifier creates a classifier backed by client.
func NewClassifier(client backend.Client) *Classifier {
	return &Classifier{client: client}
}

func classificationInstructions() string {
	options := catalog.FormattedOptions()
	return fmt.Sprintf(`You are an expert at classifying entertainment descriptions.
Select the most appropriate category from %s and respond using the classification schema.
%s`, options, catalog.InstructionListing())
}

// Classify determines which category the input text describes.
// An id outside the registry is a hard error, never silently defaulted.
func (c *Classifier) Classify(ctx context.Context, input string) (Result, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Result{}, &ClassificationError{Input: input, Err: fmt.Errorf("input text must be provided")}
	}

	raw, err := c.client.Parse(ctx, backend.ParseRequest{
		Instructions: classificationInstructions(),
		Input:        fmt.Sprintf("Find whether the following text is about a %s:\n\n`%s`", catalog.FormattedOptions(), input),
		SchemaName:   "classification",
		Schema:       ClassificationSchema(),
	})
	if err != nil {
		return Result{}, &ClassificationError{Input: input, Err: err}
	}

	var parsed Classification
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{}, &ClassificationError{Input: input, Err: err}
	}

	d, err := catalog.Resolve(parsed.Category)
	if err != nil {
		return Result{}, err
	}

	title := strings.TrimSpace(parsed.Title)
	if title == "" {
		title = input
	}

	logging.Named("classifier").Debug("classified input",
		zap.String("category", d.ID),
		zap.String("title", title))

	return Result{
		Descriptor:     d,
		Title:          title,
		Description:    parsed.Description,
		AdditionalInfo: parsed.AdditionalInfo,
	}, nil
}

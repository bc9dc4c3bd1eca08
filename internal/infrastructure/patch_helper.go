package infrastructure

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/Victor-armando18/beverage-commercial/internal/domain"
)

// OrderMergePatch returns the RFC 7386 merge patch turning before into after.
// An empty patch is "{}".
func OrderMergePatch(before, after domain.Order) ([]byte, error) {
	beforeJSON, err := json.Marshal(before)
	if err != nil {
		return nil, err
	}
	afterJSON, err := json.Marshal(after)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(beforeJSON, afterJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to create merge patch: %w", err)
	}
	return patch, nil
}

// ApplyOrderPatch applies an RFC 6902 patch to an order, e.g. to change a
// quantity or the discount before pricing again.
func ApplyOrderPatch(original domain.Order, patchData []byte) (domain.Order, error) {
	originalJSON, err := json.Marshal(original)
	if err != nil {
		return original, err
	}

	patch, err := jsonpatch.DecodePatch(patchData)
	if err != nil {
		return original, fmt.Errorf("failed to decode patch: %w", err)
	}

	modifiedJSON, err := patch.Apply(originalJSON)
	if err != nil {
		return original, fmt.Errorf("failed to apply patch: %w", err)
	}

	var updatedOrder domain.Order
	if err := json.Unmarshal(modifiedJSON, &updatedOrder); err != nil {
		return original, err
	}
	return updatedOrder, nil
}

package analytics

import (
	"encoding/json"
	"errors"
	"fmt"

	"pesqueriaOutfitters/domain"

	"gorm.io/datatypes"
)

// Metadata is a tagged union keyed by event type. Each kind decodes into its
// own struct so a bad payload is rejected before the row is written.

func validateMetadata(eventType string, md datatypes.JSONMap) error {
	switch eventType {
	case domain.EventProductView:
		// metadata optional for views
		if md == nil {
			return nil
		}
		_, err := ParseViewMetadata(md)
		return err
	case domain.EventAddToCart:
		meta, err := ParseAddToCartMetadata(md)
		if err != nil {
			return err
		}
		if meta.Quantity < 1 {
			return errors.New("quantity must be at least 1")
		}
		if meta.Price < 0 {
			return errors.New("price cannot be negative")
		}
		return nil
	case domain.EventPurchase:
		meta, err := ParsePurchaseMetadata(md)
		if err != nil {
			return err
		}
		if len(meta.Products) == 0 {
			return errors.New("purchase metadata requires at least one product line")
		}
		for _, line := range meta.Products {
			if line.ProductID == 0 || line.Quantity < 1 {
				return errors.New("purchase line requires product id and positive quantity")
			}
		}
		return nil
	}

	return nil
}

func ParseViewMetadata(md datatypes.JSONMap) (domain.ViewMetadata, error) {
	var meta domain.ViewMetadata
	if err := decodeMetadata(md, &meta); err != nil {
		return domain.ViewMetadata{}, err
	}
	return meta, nil
}

func ParseAddToCartMetadata(md datatypes.JSONMap) (domain.AddToCartMetadata, error) {
	if md == nil {
		return domain.AddToCartMetadata{}, errors.New("add-to-cart metadata is required")
	}
	var meta domain.AddToCartMetadata
	if err := decodeMetadata(md, &meta); err != nil {
		return domain.AddToCartMetadata{}, err
	}
	return meta, nil
}

func ParsePurchaseMetadata(md datatypes.JSONMap) (domain.PurchaseMetadata, error) {
	if md == nil {
		return domain.PurchaseMetadata{}, errors.New("purchase metadata is required")
	}
	var meta domain.PurchaseMetadata
	if err := decodeMetadata(md, &meta); err != nil {
		return domain.PurchaseMetadata{}, err
	}
	return meta, nil
}

func decodeMetadata(md datatypes.JSONMap, out any) error {
	raw, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode metadata: %w", err)
	}
	return nil
}

package model

import "strings"

// Normalize methods return a copy with surrounding whitespace removed, so that
// blank values fail required checks and padded identifiers collide with their
// trimmed form. They run before validation.

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func trimAll(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}

func (p CreatePartParams) Normalize() CreatePartParams {
	p.PartID = strings.TrimSpace(p.PartID)
	p.PartNumber = strings.TrimSpace(p.PartNumber)
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.CategoryID = strings.TrimSpace(p.CategoryID)
	p.Location = strings.TrimSpace(p.Location)
	return p
}

func (p UpdatePartParams) Normalize() UpdatePartParams {
	p.PartID = trimPtr(p.PartID)
	p.PartNumber = trimPtr(p.PartNumber)
	p.Name = trimPtr(p.Name)
	p.Description = trimPtr(p.Description)
	p.CategoryID = trimPtr(p.CategoryID)
	p.Location = trimPtr(p.Location)
	return p
}

func (p CreateSupplierParams) Normalize() CreateSupplierParams {
	p.SupplierID = strings.TrimSpace(p.SupplierID)
	p.Name = strings.TrimSpace(p.Name)
	p.ContactEmail = strings.ToLower(strings.TrimSpace(p.ContactEmail))
	p.ContactPhone = strings.TrimSpace(p.ContactPhone)
	p.Address = strings.TrimSpace(p.Address)
	return p
}

func (p UpdateSupplierParams) Normalize() UpdateSupplierParams {
	p.SupplierID = trimPtr(p.SupplierID)
	p.Name = trimPtr(p.Name)
	p.ContactEmail = lowerPtr(trimPtr(p.ContactEmail))
	p.ContactPhone = trimPtr(p.ContactPhone)
	p.Address = trimPtr(p.Address)
	return p
}

func (p CreatePurchaseOrderParams) Normalize() CreatePurchaseOrderParams {
	p.SupplierID = strings.TrimSpace(p.SupplierID)
	p.Items = normalizeItems(p.Items)
	p.Notes = strings.TrimSpace(p.Notes)
	return p
}

func (p UpdatePurchaseOrderParams) Normalize() UpdatePurchaseOrderParams {
	p.SupplierID = trimPtr(p.SupplierID)
	p.Items = normalizeItems(p.Items)
	p.Notes = trimPtr(p.Notes)
	return p
}

func normalizeItems(items []OrderItemParams) []OrderItemParams {
	if items == nil {
		return nil
	}
	out := make([]OrderItemParams, len(items))
	for i, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		out[i] = it
	}
	return out
}

func (p CreateQuotationParams) Normalize() CreateQuotationParams {
	p.Part.PartID = strings.TrimSpace(p.Part.PartID)
	p.Part.PartNumber = strings.TrimSpace(p.Part.PartNumber)
	p.Part.Name = strings.TrimSpace(p.Part.Name)
	p.SupplierIDs = trimAll(p.SupplierIDs)
	p.Notes = strings.TrimSpace(p.Notes)
	return p
}

func (p UpdateSupplierQuoteParams) Normalize() UpdateSupplierQuoteParams {
	p.QuotationID = strings.TrimSpace(p.QuotationID)
	p.SupplierID = strings.TrimSpace(p.SupplierID)
	p.DeliveryTime = trimPtr(p.DeliveryTime)
	return p
}

func (p BookAppointmentParams) Normalize() BookAppointmentParams {
	p.CustomerName = strings.TrimSpace(p.CustomerName)
	p.CustomerEmail = strings.ToLower(strings.TrimSpace(p.CustomerEmail))
	p.CustomerPhone = strings.TrimSpace(p.CustomerPhone)
	p.VehicleMake = strings.TrimSpace(p.VehicleMake)
	p.VehicleModel = strings.TrimSpace(p.VehicleModel)
	p.LicensePlate = strings.ToUpper(strings.TrimSpace(p.LicensePlate))
	p.ServiceTypes = trimAll(p.ServiceTypes)
	p.Date = strings.TrimSpace(p.Date)
	p.TimeSlot = strings.TrimSpace(p.TimeSlot)
	p.Notes = strings.TrimSpace(p.Notes)
	return p
}

func (p UpdateAppointmentParams) Normalize() UpdateAppointmentParams {
	p.CustomerName = trimPtr(p.CustomerName)
	p.CustomerEmail = lowerPtr(trimPtr(p.CustomerEmail))
	p.CustomerPhone = trimPtr(p.CustomerPhone)
	p.VehicleMake = trimPtr(p.VehicleMake)
	p.VehicleModel = trimPtr(p.VehicleModel)
	if p.LicensePlate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*p.LicensePlate))
		p.LicensePlate = &plate
	}
	p.ServiceTypes = trimAll(p.ServiceTypes)
	p.Date = trimPtr(p.Date)
	p.TimeSlot = trimPtr(p.TimeSlot)
	p.Notes = trimPtr(p.Notes)
	return p
}

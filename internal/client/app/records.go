package app

import (
	"strconv"

	"github.com/hitenSisghSoft/soundbox/internal/client/form"
)

// Records mirror the server's JSON shapes, limited to the fields the console
// renders or edits.

type employeeRecord struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Shift  string `json:"shift"`
	Role   string `json:"role"`
}

func (r employeeRecord) values() form.Values {
	return form.Values{
		"name":   r.Name,
		"email":  r.Email,
		"mobile": r.Mobile,
		"shift":  r.Shift,
		"role":   r.Role,
	}
}

type merchantRecord struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	MobileNumber           string `json:"mobile_number"`
	CompanyName            string `json:"company_name"`
	Address                string `json:"address"`
	City                   string `json:"city"`
	State                  string `json:"state"`
	Country                string `json:"country"`
	ZipCode                string `json:"zip_code"`
	PanNumber              string `json:"pan_number"`
	GstNumber              string `json:"gst_number"`
	TemporaryAccountNumber string `json:"temporary_account_number"`
}

func (r merchantRecord) values() form.Values {
	return form.Values{
		"name":                     r.Name,
		"email":                    r.Email,
		"mobile_number":            r.MobileNumber,
		"company_name":             r.CompanyName,
		"address":                  r.Address,
		"city":                     r.City,
		"state":                    r.State,
		"country":                  r.Country,
		"zip_code":                 r.ZipCode,
		"pan_number":               r.PanNumber,
		"gst_number":               r.GstNumber,
		"temporary_account_number": r.TemporaryAccountNumber,
	}
}

type storeRecord struct {
	ID          string `json:"id"`
	MerchantID  string `json:"merchant_id"`
	StoreName   string `json:"store_name"`
	StoreCode   string `json:"store_code"`
	OwnerName   string `json:"owner_name"`
	OwnerMobile string `json:"owner_mobile"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
}

func (r storeRecord) values() form.Values {
	return form.Values{
		"merchant_id":  r.MerchantID,
		"store_name":   r.StoreName,
		"store_code":   r.StoreCode,
		"owner_name":   r.OwnerName,
		"owner_mobile": r.OwnerMobile,
		"address":      r.Address,
		"city":         r.City,
		"state":        r.State,
		"pincode":      r.Pincode,
	}
}

type machineRecord struct {
	ID              string `json:"id"`
	AssignedStoreID string `json:"assigned_store_id"`
	MachineID       string `json:"machine_id"`
	SerialNumber    string `json:"serial_number"`
	Brand           string `json:"brand"`
	Model           string `json:"model"`
	FirmwareVersion string `json:"firmware_version"`
	HardwareVersion string `json:"hardware_version"`
	QRCodeURL       string `json:"qr_code_url"`
	UpiID           string `json:"upi_id"`
	MerchantName    string `json:"merchant_name"`
	SimNumber       string `json:"sim_number"`
	SimOperator     string `json:"sim_operator"`
	VolumeLevel     int    `json:"volume_level"`
	Language        string `json:"language"`
	Remarks         string `json:"remarks"`
}

func (r machineRecord) values() form.Values {
	return form.Values{
		"assigned_store_id": r.AssignedStoreID,
		"machine_id":        r.MachineID,
		"serial_number":     r.SerialNumber,
		"brand":             r.Brand,
		"model":             r.Model,
		"firmware_version":  r.FirmwareVersion,
		"hardware_version":  r.HardwareVersion,
		"qr_code_url":       r.QRCodeURL,
		"upi_id":            r.UpiID,
		"merchant_name":     r.MerchantName,
		"sim_number":        r.SimNumber,
		"sim_operator":      r.SimOperator,
		"volume_level":      strconv.Itoa(r.VolumeLevel),
		"language":          r.Language,
		"remarks":           r.Remarks,
	}
}

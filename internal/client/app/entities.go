package app

import (
	"net/http"

	"github.com/hitenSisghSoft/soundbox/internal/client/form"
)

// API paths consumed by the console, base-relative. They mirror the dashboard
// endpoint table one-to-one.
const (
	loginPath   = "/users/login"
	profilePath = "/users/profile"

	employeeListPath   = "/users/admin/all_users"
	employeeGetPath    = "/users/admin/user/"
	employeeCreatePath = "/users/admin/create_user"
	employeeUpdatePath = "/users/admin/update_user/"
	employeeDeletePath = "/users/admin/delete_user/"

	merchantSearchPath = "/merchants/search/mobile"
	merchantGetPath    = "/merchants/"
	merchantCreatePath = "/merchants/add"
	merchantUpdatePath = "/merchants/update/"
	merchantStoresPath = "/merchants/stores"
	merchantListPath   = "/merchant/list"
	merchantDeletePath = "/merchant/delete/"

	storeCreatePath = "/stores/create"
	storeUpdatePath = "/stores/"
	storeDeletePath = "/stores/"

	machineByStorePath = "/machines/store/"
	machineCreatePath  = "/machines"
	machineUpdatePath  = "/machines/"
	machineDeletePath  = "/machines/"
)

// Routes the console "navigates" to after successful submissions.
const (
	employeeListRoute = "/employee"
	merchantListRoute = "/agent/merchant"
	profileRoute      = "/profile"
	signInRoute       = "/signin"
)

func profileSchema() form.Schema {
	return form.Schema{Fields: []form.FieldSpec{
		{Name: "name", Label: "Name", Rule: form.Text},
		{Name: "email", Label: "Email", Rule: form.Email},
		{Name: "mobile", Label: "Mobile number", Rule: form.Digits, Length: 10},
	}}
}

func profileEndpoints() form.Endpoints {
	return form.Endpoints{
		Update: func(string) form.Endpoint {
			return form.Endpoint{Method: http.MethodPut, Path: profilePath}
		},
	}
}

func employeeSchema(mode form.Mode) form.Schema {
	fields := []form.FieldSpec{
		{Name: "name", Label: "Name", Rule: form.Text},
		{Name: "email", Label: "Email", Rule: form.Email},
		{Name: "mobile", Label: "Mobile number", Rule: form.Digits, Length: 10},
		{Name: "shift", Label: "Shift", Rule: form.Text},
		{Name: "role", Label: "Role", Rule: form.Text},
		{Name: "password", Label: "Password", Rule: form.Text, Optional: mode == form.ModeEdit},
	}
	return form.Schema{Fields: fields}
}

func merchantSchema() form.Schema {
	return form.Schema{Fields: []form.FieldSpec{
		{Name: "name", Label: "Name", Rule: form.Text},
		{Name: "email", Label: "Email", Rule: form.Email},
		{Name: "mobile_number", Label: "Mobile number", Rule: form.Digits, Length: 10},
		{Name: "company_name", Label: "Company Name", Rule: form.Text},
		{Name: "address", Label: "Address", Rule: form.Text},
		{Name: "city", Label: "City", Rule: form.Text},
		{Name: "state", Label: "State", Rule: form.Text},
		{Name: "country", Label: "Country", Rule: form.Text},
		{Name: "zip_code", Label: "ZipCode", Rule: form.Digits, Length: 6},
		{Name: "pan_number", Label: "Pan Number", Rule: form.Text},
		{Name: "gst_number", Label: "Gst Number", Rule: form.Text},
		{Name: "temporary_account_number", Label: "Temporary Account Number", Rule: form.Text},
	}}
}

func storeSchema() form.Schema {
	return form.Schema{Fields: []form.FieldSpec{
		{Name: "merchant_id", Label: "Merchant", Rule: form.Text, Hidden: true},
		{Name: "store_name", Label: "Store Name", Rule: form.Text},
		{Name: "store_code", Label: "Store Code", Rule: form.Text},
		{Name: "owner_name", Label: "Owner Name", Rule: form.Text},
		{Name: "owner_mobile", Label: "Owner mobile", Rule: form.Digits, Length: 10},
		{Name: "address", Label: "Address", Rule: form.Text},
		{Name: "city", Label: "City", Rule: form.Text},
		{Name: "state", Label: "State", Rule: form.Text},
		{Name: "pincode", Label: "Pincode", Rule: form.Digits, Length: 6},
	}}
}

func machineSchema() form.Schema {
	return form.Schema{Fields: []form.FieldSpec{
		{Name: "assigned_store_id", Label: "Store", Rule: form.Text, Hidden: true},
		{Name: "machine_id", Label: "Machine ID", Rule: form.Text},
		{Name: "serial_number", Label: "Serial Number", Rule: form.Text},
		{Name: "brand", Label: "Brand", Rule: form.Text},
		{Name: "model", Label: "Model", Rule: form.Text},
		{Name: "firmware_version", Label: "Firmware Version", Rule: form.Text},
		{Name: "hardware_version", Label: "Hardware Version", Rule: form.Text},
		{Name: "qr_code_url", Label: "QR Code URL", Rule: form.URL},
		{Name: "upi_id", Label: "UPI ID", Rule: form.Text},
		{Name: "merchant_name", Label: "Merchant Name", Rule: form.Text},
		{Name: "sim_number", Label: "SIM Number", Rule: form.Digits, Length: 10},
		{Name: "sim_operator", Label: "SIM Operator", Rule: form.Text},
		{Name: "volume_level", Label: "Volume Level", Rule: form.Numeric},
		{Name: "language", Label: "Language", Rule: form.Text},
		{Name: "remarks", Label: "Remarks", Rule: form.Text, Optional: true},
	}}
}

func employeeEndpoints() form.Endpoints {
	return form.Endpoints{
		Create: form.Endpoint{Method: http.MethodPost, Path: employeeCreatePath},
		Update: func(id string) form.Endpoint {
			return form.Endpoint{Method: http.MethodPut, Path: employeeUpdatePath + id}
		},
	}
}

func merchantEndpoints() form.Endpoints {
	return form.Endpoints{
		Create: form.Endpoint{Method: http.MethodPost, Path: merchantCreatePath},
		Update: func(id string) form.Endpoint {
			return form.Endpoint{Method: http.MethodPut, Path: merchantUpdatePath + id}
		},
	}
}

func storeEndpoints() form.Endpoints {
	return form.Endpoints{
		Create: form.Endpoint{Method: http.MethodPost, Path: storeCreatePath},
		Update: func(id string) form.Endpoint {
			return form.Endpoint{Method: http.MethodPut, Path: storeUpdatePath + id}
		},
	}
}

func machineEndpoints() form.Endpoints {
	return form.Endpoints{
		Create: form.Endpoint{Method: http.MethodPost, Path: machineCreatePath},
		Update: func(id string) form.Endpoint {
			return form.Endpoint{Method: http.MethodPut, Path: machineUpdatePath + id}
		},
	}
}

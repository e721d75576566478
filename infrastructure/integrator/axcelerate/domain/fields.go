package axceleratedomain

import "github.com/AIMastersDoJo/citclocationsdashboard/pkg/record"

// Variantes de nome observadas nos payloads do aXcelerate. A API mistura
// maiúsculas, camelCase e snake_case entre endpoints e versões; a ordem de
// cada lista é a prioridade de leitura.

// Instância de curso
var (
	InstanceIDFields = record.Fields{
		"INSTANCEID", "instanceID", "InstanceID", "instanceId", "instance_id", "ID", "id",
	}
	TrainingCategoryFields = record.Fields{
		"TRAININGCATEGORY", "trainingCategory", "TrainingCategory", "training_category", "CATEGORY", "category",
	}
	StartDateFields = record.Fields{
		"STARTDATE", "startDate", "StartDate", "start_date", "STARTDATETIME",
	}
	EndDateFields = record.Fields{
		"ENDDATE", "endDate", "EndDate", "end_date", "FINISHDATE", "ENDDATETIME",
	}
	NumbersFields = record.Fields{
		"NUMBERS", "NUMBER", "ENROLMENTS", "numbers", "Numbers", "enrolmentCount", "ENROLMENTCOUNT",
	}
	CapacityFields = record.Fields{
		"CAPACITY", "MAXPARTICIPANTS", "capacity", "Capacity", "maxParticipants", "max_participants",
	}
)

// Inscrição
var (
	EnrolmentCostFields = record.Fields{
		"COST", "cost", "Cost", "FEE", "fee", "AMOUNT", "amount", "PRICE", "price",
	}
	InvoiceReferenceFields = record.Fields{
		"INVOICEID", "invoiceID", "InvoiceID", "invoiceId", "invoice_id",
		"INVOICEIDS", "invoiceIDs", "invoiceIds", "INVOICES", "invoices",
	}
)

// Fatura e itens de fatura
var (
	InvoiceIDFields = record.Fields{
		"INVOICEID", "invoiceID", "InvoiceID", "invoiceId", "invoice_id", "ID", "id",
	}
	InvoiceTotalFields = record.Fields{
		"TOTALGROSS", "totalGross", "TOTAL", "total", "Total", "TOTALAMOUNT", "totalAmount",
		"AMOUNTINCTAX", "amountIncTax", "GRANDTOTAL", "grandTotal",
	}
	InvoiceLineCollectionFields = record.Fields{
		"ITEMS", "items", "LINES", "lines", "LINEITEMS", "lineItems", "line_items", "INVOICELINES", "invoiceLines",
	}
	InvoiceAmountFields = record.Fields{
		"AMOUNT", "amount", "Amount", "VALUE", "value",
	}
	LineTotalFields = record.Fields{
		"LINETOTAL", "lineTotal", "line_total", "TOTALGROSS", "totalGross", "TOTAL", "total",
	}
	LineQuantityFields = record.Fields{
		"QTY", "qty", "QUANTITY", "quantity", "Quantity",
	}
	LineUnitPriceFields = record.Fields{
		"UNITPRICE", "unitPrice", "unit_price", "UNITPRICEGROSS", "unitPriceGross", "PRICE", "price", "RATE", "rate",
	}
)

// invoiceWrapperKeys são as chaves sob as quais a fatura pode vir embrulhada
var invoiceWrapperKeys = []string{"INVOICE", "invoice", "Invoice", "data", "DATA", "result", "RESULT"}

// lineWrapperKeys embrulham os itens dentro da coleção ({"ITEMS": {"ITEM": [...]}})
var lineWrapperKeys = []string{"ITEM", "item", "LINE", "line"}

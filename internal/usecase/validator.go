package usecase

// usecaseがValidatorInterfaceに依存する約束
type InputValidator interface {
	ValidateAccount(in AccountInput) error
	ValidateAccountPatch(p AccountPatch) error
	ValidateProduct(in ProductInput) error
	ValidateProductPatch(p ProductPatch) error
	ValidateOrder(in PlaceOrderInput) error
}

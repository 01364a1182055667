// Package access es el núcleo puro del control de acceso de la consola:
// enumeración cerrada de roles, tabla de rutas con sus roles permitidos y la
// función de decisión de navegación. No tiene dependencias: todas las
// decisiones son síncronas sobre estado ya resuelto.
package access

// Role es la enumeración cerrada de roles administrativos de la consola.
// La comparación es exacta y sensible a mayúsculas: cualquier cadena fuera
// del conjunto se trata como "sin acceso", nunca como "acceso total".
type Role string

const (
	RoleSuperAdmin          Role = "SuperAdmin"
	RoleAdmin               Role = "Admin"
	RoleBranchManager       Role = "BranchManager"
	RoleOperationsManager   Role = "OperationsManager"
	RoleFinanceOfficer      Role = "FinanceOfficer"
	RoleWarehouseSupervisor Role = "WarehouseSupervisor"
	RoleDispatchOfficer     Role = "DispatchOfficer"
	RoleDeliveryAgent       Role = "DeliveryAgent"
	RoleCustomerSupport     Role = "CustomerSupport"
	RoleITAdmin             Role = "ITAdmin"
)

// AllRoles lista todos los roles válidos, en el orden de la consola.
var AllRoles = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleBranchManager,
	RoleOperationsManager,
	RoleFinanceOfficer,
	RoleWarehouseSupervisor,
	RoleDispatchOfficer,
	RoleDeliveryAgent,
	RoleCustomerSupport,
	RoleITAdmin,
}

// ParseRole valida una cadena contra la enumeración. El match exhaustivo hace
// que un rol no reconocido sea una rama explícita que "falla cerrado".
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleSuperAdmin, RoleAdmin, RoleBranchManager, RoleOperationsManager,
		RoleFinanceOfficer, RoleWarehouseSupervisor, RoleDispatchOfficer,
		RoleDeliveryAgent, RoleCustomerSupport, RoleITAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

// Valid indica si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// String devuelve la representación en cadena del rol.
func (r Role) String() string { return string(r) }

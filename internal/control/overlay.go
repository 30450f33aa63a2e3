package control

// Popup lifecycle. The registry tracks at most one open overlay at a time;
// opening a second implicitly closes the first, and the outgoing control's
// Hide completes before the incoming control's Show begins.

// Click drives the toggle semantics of a control's trigger: open when
// closed, close when its own overlay is open, and switch when another
// control's overlay is open. Clicking a disabled control is a no-op.
func (r *Registry) Click(id string) error {
	inst, behavior, err := r.lookup("Click", id)
	if err != nil {
		return err
	}

	if r.openID != "" {
		open, ok := r.controls[r.openID]
		if ok {
			r.hideOpen(open)
		} else {
			r.openID = ""
		}
		if ok && open.ID == id {
			return nil
		}
	}

	if inst.Disabled {
		return nil
	}

	inst.ValueBeforeEdit = inst.Value
	if err := behavior.Show(r.ctx, inst); err != nil {
		return err
	}
	r.openID = id
	return nil
}

// Close closes the active overlay without altering its value; no-op when
// nothing is open.
func (r *Registry) Close() {
	if r.openID == "" {
		return
	}
	// Equivalent to clicking the open control's trigger.
	_ = r.Click(r.openID)
}

// Cancel rolls the open control back to its value before the overlay opened
// and closes the overlay. The change callback never fires on this path.
func (r *Registry) Cancel() {
	if r.openID == "" {
		return
	}
	r.cancelOpen()
}

// OpenID returns the id of the control whose overlay is open, or "".
func (r *Registry) OpenID() string {
	return r.openID
}

func (r *Registry) hideOpen(open *Instance) {
	if behavior, ok := r.behaviors[open.Type]; ok {
		behavior.Hide(r.ctx, open)
	}
	r.ctx.HideOverlay(open)
	r.openID = ""
}

func (r *Registry) cancelOpen() {
	open, ok := r.controls[r.openID]
	if !ok {
		r.openID = ""
		return
	}
	if behavior, ok := r.behaviors[open.Type]; ok {
		behavior.Cancel(r.ctx, open)
	}
	r.ctx.HideOverlay(open)
	r.ctx.RepaintTrigger(open)
	r.openID = ""
}
